package middleware

import (
	"net/http"

	"github.com/lwandile-dev/mzansimarket-backend/api/responses"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
)

const sessionKeyHeader = "X-Session-Key"

// maxSessionKeyLen bounds the opaque key so clients cannot grow registry keys
// without limit.
const maxSessionKeyLen = 128

// SessionKey requires the opaque storefront session header used to address
// in-memory carts and wishlists.
func SessionKey(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(sessionKeyHeader)
			if key == "" || len(key) > maxSessionKeyLen {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session key required"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSessionKey(r.Context(), key)))
		})
	}
}
