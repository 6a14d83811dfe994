package interceptors

import (
	"context"
	"net/http"
)

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
	// CtxOp — имя операции клиента (метка метрик и поле логов).
	CtxOp CtxKey = "op"
)

// WithOp кладёт имя операции в контекст исходящего вызова.
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, CtxOp, op)
}

// OpFrom — имя операции или "unknown".
func OpFrom(ctx context.Context) string {
	if op, _ := ctx.Value(CtxOp).(string); op != "" {
		return op
	}

	return "unknown"
}

// WithMetadata — добавляет в исходящий запрос заголовки:
//   - X-Request-Id (если есть в контексте и ещё не задан);
//   - User-Agent (если передан параметром).
//
// Исходный запрос не модифицируется.
func WithMetadata(userAgent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			rid, _ := r.Context().Value(CtxRequestID).(string)
			if rid == "" && userAgent == "" {
				return next.RoundTrip(r)
			}

			r = r.Clone(r.Context())
			if rid != "" && r.Header.Get("X-Request-Id") == "" {
				r.Header.Set("X-Request-Id", rid)
			}

			if userAgent != "" {
				r.Header.Set("User-Agent", userAgent)
			}

			return next.RoundTrip(r)
		})
	}
}
