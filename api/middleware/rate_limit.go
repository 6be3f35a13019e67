package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/lwandile-dev/mzansimarket-backend/api/responses"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/config"
	pkgerrors "github.com/lwandile-dev/mzansimarket-backend/pkg/errors"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/logger"
	"github.com/lwandile-dev/mzansimarket-backend/pkg/redis"
)

// IntakeRateLimit throttles anonymous intake submissions per client IP using
// a fixed redis window. Fails open when redis is unreachable so intake never
// hard-depends on the cache.
func IntakeRateLimit(cfg config.IntakeRateLimitConfig, client *redis.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil || cfg.IPLimit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			scope := fmt.Sprintf("intake:%s", clientIP(r))
			allowed, _, err := client.FixedWindowAllow(r.Context(), scope, int64(cfg.IPLimit), cfg.Window)
			if err != nil {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "scope", scope), "intake rate limit check failed, allowing request")
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many submissions, try again later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
