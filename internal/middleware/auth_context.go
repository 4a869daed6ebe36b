package middleware

import (
	"context"
	"net/http"
	"strings"

	"pawfect-match/internal/platform/httpjson"
	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si vienen credenciales Basic válidas => setea claims.
// - Si required == false, el request sigue igual aunque no haya claims.
// - Si required == true y no hay claims válidas => 401.
// Las rutas que no pasan por este middleware (health, users, metrics) quedan abiertas.
func AuthContext(authn auth.Authenticator, required bool, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			username = strings.TrimSpace(username)

			if ok && username != "" && authn != nil {
				valid, err := authn.Authenticate(r.Context(), username, password)
				if err != nil {
					httpjson.WriteError(w, log, err)
					return
				}
				if valid {
					ctx := context.WithValue(r.Context(), claimsKey, auth.Claims{Username: username})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			if !required {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("WWW-Authenticate", `Basic realm="pawfect-match"`)
			httpjson.Write(w, http.StatusUnauthorized, httpjson.ErrorResponse{Error: "unauthorized"})
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
