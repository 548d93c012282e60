package chains

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidAddress checks that s is a 0x-prefixed 20 byte hex address.
func IsValidAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	return common.IsHexAddress(s)
}

// NormalizeAddress returns the EIP-55 checksummed form of s.
func NormalizeAddress(s string) string {
	return common.HexToAddress(s).Hex()
}

// IsZeroAddress reports whether s is the zero address.
func IsZeroAddress(s string) bool {
	return common.HexToAddress(s) == (common.Address{})
}

// SameAddress compares two addresses ignoring checksum casing.
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
