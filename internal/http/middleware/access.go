package middleware

import (
	"context"
	"log/slog"
	"sync"
)

// access — то, что внутренние мидлвары сообщают итоговой записи "http".
// Logging создаёт его до вызова next, Session и Timeout заполняют.
type access struct {
	mu       sync.Mutex
	session  string
	userID   string
	timedOut bool
}

type accessKey struct{}

func withAccess(ctx context.Context) (context.Context, *access) {
	acc := &access{}
	return context.WithValue(ctx, accessKey{}, acc), acc
}

// accessFrom возвращает nil, если Logging не подключён.
func accessFrom(ctx context.Context) *access {
	acc, _ := ctx.Value(accessKey{}).(*access)
	return acc
}

func (a *access) setSession(state, userID string) {
	if a == nil {
		return
	}

	a.mu.Lock()
	a.session, a.userID = state, userID
	a.mu.Unlock()
}

func (a *access) markTimedOut() {
	if a == nil {
		return
	}

	a.mu.Lock()
	a.timedOut = true
	a.mu.Unlock()
}

func (a *access) attrs() []slog.Attr {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]slog.Attr, 0, 3)
	if a.session != "" {
		out = append(out, slog.String("session", a.session))
	}
	if a.userID != "" {
		out = append(out, slog.String("user_id", a.userID))
	}
	if a.timedOut {
		out = append(out, slog.Bool("timed_out", true))
	}

	return out
}
