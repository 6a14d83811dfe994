package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/hbnb-web/internal/errors"
	logctx "github.com/pribylovaa/hbnb-web/pkg/log"
)

var errPanic = errors.New("panic in handler")

// Recover перехватывает panic. Если хендлер ещё ничего не записал, отдаётся
// страница 500; иначе ответ уже ушёл и остаётся только запись в лог.
// http.ErrAbortHandler пробрасывается дальше: это штатный обрыв ответа.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
					slog.Bool("headers_sent", sw.status != 0),
					slog.String("stack", string(debug.Stack())),
				)

				if sw.status == 0 {
					apierrors.WriteError(sw, r, errPanic)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
