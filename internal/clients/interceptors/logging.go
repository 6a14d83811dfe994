package interceptors

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	logctx "github.com/pribylovaa/hbnb-web/pkg/log"
)

// Logging — логирование исходящих вызовов бэкенда.
// Поведение:
//   - берёт X-Request-Id из заголовка (или генерирует uuid и добавляет);
//   - логгер берётся из контекста запроса, иначе base;
//   - пишет одну итоговую запись: msg="backend", status, dur (Warn при сетевой ошибке).
//
// Тело запроса и Authorization не логируются.
func Logging(base *slog.Logger) Middleware {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			rid := r.Header.Get("X-Request-Id")
			if rid == "" {
				rid = uuid.NewString()
				r = r.Clone(r.Context())
				r.Header.Set("X-Request-Id", rid)
			}

			l := logctx.FromOr(r.Context(), base).With(
				slog.String("request_id", rid),
				slog.String("op", OpFrom(r.Context())),
				slog.String("method", r.Method),
				slog.String("target", r.URL.Host),
				slog.String("path", r.URL.Path),
			)

			resp, err := next.RoundTrip(r)
			if err != nil {
				l.Warn("backend",
					slog.String("err", err.Error()),
					slog.Duration("dur", time.Since(start)),
				)
				return nil, err
			}

			l.Info("backend",
				slog.Int("status", resp.StatusCode),
				slog.Duration("dur", time.Since(start)),
			)

			return resp, nil
		})
	}
}
