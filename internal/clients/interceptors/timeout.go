package interceptors

import (
	"context"
	"time"
)

// WithTimeout навешивает таймаут d на исходящий вызов, если у контекста ещё нет дедлайна.
// Существующий дедлайн не переопределяется.
//
// Контракт:
//  1. d <= 0 — контекст не меняется, cancel — no-op;
//  2. у ctx уже есть deadline — оставляет как есть;
//  3. иначе — context.WithTimeout(ctx, d).
//
// Вызывающий обязан вызвать cancel после чтения тела ответа, поэтому
// таймаут живёт здесь, а не в RoundTripper.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}

	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, d)
}
