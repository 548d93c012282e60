package vault

import (
	"fmt"
)

// MappingError is returned when a raw upstream record cannot be turned into a Vault
// because an identity-critical field is missing or malformed.
type MappingError struct {
	Field  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("map vault record: %s %s", e.Field, e.Reason)
}

// RemoteQueryError is returned when the remote data service fails at the transport
// level or reports errors in its response payload.
type RemoteQueryError struct {
	// StatusCode is the HTTP status of the upstream response, zero when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteQueryError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("remote query failed with status %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("remote query failed: %s: %v", e.Message, e.Err)
	default:
		return "remote query failed: " + e.Message
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *RemoteQueryError) Unwrap() error {
	return e.Err
}

// UnsupportedChainError is returned when a chain name or id is absent from the static chain table.
type UnsupportedChainError struct {
	Chain string
}

func (e *UnsupportedChainError) Error() string {
	return fmt.Sprintf("unsupported chain: %s", e.Chain)
}

// InvalidFilterError is returned when a filter value fails local validation.
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %s: %s", e.Field, e.Reason)
}
