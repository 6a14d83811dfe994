package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pribylovaa/hbnb-web/internal/metrics"
	"github.com/pribylovaa/hbnb-web/internal/session"
	logctx "github.com/pribylovaa/hbnb-web/pkg/log"
)

// Session разбирает cookie с токеном и кладёт session.State в контекст.
//
// Просроченный или битый токен удаляется из cookie. Для GET/HEAD клиент
// один раз получает 303 на тот же URL (страница перезагружается уже без
// сессии, см. Manager.BeginReload); остальные методы и повторный приход
// того же токена обрабатываются как анонимные.
func Session(m *session.Manager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jar := session.NewHTTPJar(w, r)
			st := m.Resolve(r.Context(), jar)
			metrics.SessionStates.WithLabelValues(st.Status.String()).Inc()
			accessFrom(r.Context()).setSession(st.Status.String(), st.UserID)

			if st.Stale() {
				m.End(jar)

				reload := r.Method == http.MethodGet || r.Method == http.MethodHead
				if reload && m.BeginReload(jar) {
					http.Redirect(w, r, r.URL.RequestURI(), http.StatusSeeOther)
					return
				}

				st = session.State{Status: session.StatusAnonymous}
			}

			ctx := session.Into(r.Context(), st)
			if st.Authenticated() {
				ctx = logctx.With(ctx, slog.String("user_id", st.UserID))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
