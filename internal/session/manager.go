package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	logctx "github.com/pribylovaa/hbnb-web/pkg/log"
	"github.com/pribylovaa/hbnb-web/pkg/redact"
)

// Status — состояние сессии после разбора cookie.
type Status int

const (
	// StatusAnonymous — токена нет.
	StatusAnonymous Status = iota
	// StatusAuthenticated — токен разобран и не истёк.
	StatusAuthenticated
	// StatusExpired — токен разобран, exp <= now.
	StatusExpired
	// StatusInvalid — токен есть, но не разбирается.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	case StatusExpired:
		return "expired"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// State — результат разбора сессии.
// Token и UserID заполнены только для StatusAuthenticated.
type State struct {
	Status    Status
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// Authenticated — можно ли ходить в бэкенд от имени пользователя.
func (s State) Authenticated() bool { return s.Status == StatusAuthenticated }

// Stale — в cookie лежит негодный токен: его надо удалить и перезагрузить страницу.
func (s State) Stale() bool {
	return s.Status == StatusExpired || s.Status == StatusInvalid
}

// Manager определяет состояние сессии и управляет cookie с токеном.
type Manager struct {
	cookieName string
	ttl        time.Duration
	now        func() time.Time
}

// Option — функциональная опция Manager.
type Option func(*Manager)

// WithClock подменяет часы (для тестов).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager создаёт менеджер. Пустое имя cookie -> "token", ttl<=0 -> 1h.
func NewManager(cookieName string, ttl time.Duration, opts ...Option) *Manager {
	if cookieName == "" {
		cookieName = "token"
	}

	if ttl <= 0 {
		ttl = time.Hour
	}

	m := &Manager{cookieName: cookieName, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) CookieName() string { return m.cookieName }

// Resolve разбирает cookie из jar.
func (m *Manager) Resolve(ctx context.Context, jar Jar) State {
	token, ok := jar.Get(m.cookieName)
	if !ok || token == "" {
		return State{Status: StatusAnonymous}
	}

	return m.ResolveToken(ctx, token)
}

// ResolveToken определяет состояние по самому токену.
// Ошибки разбора логируются и не возвращаются: битый токен = нет сессии.
func (m *Manager) ResolveToken(ctx context.Context, token string) State {
	if token == "" {
		return State{Status: StatusAnonymous}
	}

	claims, err := Decode(token)
	if err != nil {
		logctx.From(ctx).Debug("session_invalid",
			slog.String("token", redact.Token(token)),
			slog.String("err", err.Error()),
		)
		return State{Status: StatusInvalid}
	}

	exp := claims.ExpiresAt.Time
	if !exp.After(m.now()) {
		logctx.From(ctx).Debug("session_expired",
			slog.String("token", redact.Token(token)),
			slog.Time("exp", exp),
		)
		return State{Status: StatusExpired, ExpiresAt: exp}
	}

	return State{
		Status:    StatusAuthenticated,
		Token:     token,
		UserID:    claims.Subject,
		ExpiresAt: exp,
	}
}

// Start сохраняет токен после логина с фиксированным TTL.
func (m *Manager) Start(jar Jar, token string) error {
	if token == "" {
		return errors.New("session.Start: empty token")
	}

	jar.Set(m.cookieName, token, m.ttl)
	return nil
}

// Срок жизни маркера перезагрузки: хватает на один редирект.
const reloadMarkerTTL = 10 * time.Second

func (m *Manager) reloadMarker() string { return m.cookieName + "_reload" }

// BeginReload решает, перезагружать ли страницу после удаления негодного токена.
// Перезагрузка разрешается один раз: ставится короткоживущий маркер. Если
// токен пришёл снова при живом маркере (cookie выставлена на другой Path и
// не удалилась), маркер снимается и запрос идёт дальше как анонимный.
func (m *Manager) BeginReload(jar Jar) bool {
	if _, ok := jar.Get(m.reloadMarker()); ok {
		jar.Expire(m.reloadMarker())
		return false
	}

	jar.Set(m.reloadMarker(), "1", reloadMarkerTTL)
	return true
}

// End удаляет cookie (логаут или негодный токен).
func (m *Manager) End(jar Jar) {
	jar.Expire(m.cookieName)
}

type ctxKey struct{}

// Into кладёт состояние сессии в контекст запроса.
func Into(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// From достаёт состояние сессии; по умолчанию — анонимная.
func From(ctx context.Context) State {
	if s, ok := ctx.Value(ctxKey{}).(State); ok {
		return s
	}

	return State{Status: StatusAnonymous}
}
