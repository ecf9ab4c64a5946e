package http

import (
	"context"
	"net/http"

	"github.com/sparkyshop/sparky/internal/session"
)

const sessionCookie = "sparky_session"

type contextKey string

const sessionContextKey contextKey = "session"

// SessionMiddleware resolves the conversation for the request from the
// session cookie, creating a fresh one for first contact or an expired id.
// The cookie is (re)issued on every response.
func SessionMiddleware(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(sessionCookie); err == nil {
				id = cookie.Value
			}

			sc := sessions.GetOrCreate(id)

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sc.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionContextKey, sc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromContext(ctx context.Context) *session.Context {
	sc, _ := ctx.Value(sessionContextKey).(*session.Context)
	return sc
}
