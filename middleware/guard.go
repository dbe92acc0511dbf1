package middleware

import (
	"context"
	"net/http"

	authengine "github.com/weatherly/authengine"
)

type sessionContextKey struct{}

// SessionFromContext returns the session attached by [RequireSession], if
// any.
func SessionFromContext(ctx context.Context) (*authengine.SessionInfo, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(*authengine.SessionInfo)
	return sess, ok
}

// RequireSession gates handlers on an active session. Requests with no
// session (or an expired one, which the read itself clears) receive 401;
// otherwise the session is attached to the request context for downstream
// handlers.
func RequireSession(engine *authengine.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			sess, err := engine.CurrentSession(r.Context())
			if err != nil || sess == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
