package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Timeout ограничивает запрос (а с ним и все вызовы бэкенда) общим дедлайном
// timeouts.service. Уже заданный дедлайн не переопределяется; d <= 0 — no-op.
// Истёкший дедлайн отмечается в записи "http" как timed_out.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, ok := ctx.Deadline(); !ok {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				accessFrom(ctx).markTimedOut()
			}
		})
	}
}
