package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/vault-discovery/pkg/app/errors"
	apphttp "github.com/chainsafe/vault-discovery/pkg/app/http"
)

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func Middleware(v TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.WriteError(w, r, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}
			sub, err := v.Validate(r.Context(), token)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.String("path", r.URL.Path), zap.Error(err))
				apphttp.WriteError(w, r, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), sub)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
