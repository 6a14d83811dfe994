package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/hbnb-web/internal/clients"
	"github.com/pribylovaa/hbnb-web/pkg/log"
	"github.com/pribylovaa/hbnb-web/pkg/redact"
)

const loginFailedPrefix = "Login failed: "

// Login обменивает email/пароль на access-токен.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	const op = "service.auth.Login"

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	lg := log.From(ctx).With(slog.String("email", redact.Email(email)))

	token, err := s.backend.Login(ctx, email, password)
	if err != nil {
		lg.Warn("login_failed",
			slog.String("op", op),
			slog.Int("status", clients.StatusOf(err)),
		)

		return "", fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok", slog.String("op", op))

	return token, nil
}

// LoginFailureMessage — "Login failed: " + reason phrase ответа
// или текст сетевой ошибки.
func LoginFailureMessage(err error) string {
	var apiErr *clients.APIError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFields):
		return MsgFillAllFields
	case errors.As(err, &apiErr):
		return loginFailedPrefix + apiErr.StatusText
	case errors.Is(err, clients.ErrUnavailable):
		return loginFailedPrefix + clients.ErrUnavailable.Error()
	default:
		return loginFailedPrefix + "unexpected response"
	}
}
