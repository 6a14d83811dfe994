package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable — бэкенд недоступен (сеть, таймаут, отмена).
	ErrUnavailable = errors.New("backend unavailable")
	// ErrBadResponse — ответ 2xx, который не удалось разобрать.
	ErrBadResponse = errors.New("bad backend response")
)

// APIError — ответ бэкенда вне 2xx.
// StatusText — reason phrase из статусной строки ответа ("UNAUTHORIZED" у flask).
// Message — текст из тела {"message"} или {"error"}, может быть пустым.
type APIError struct {
	Status     int
	StatusText string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend status %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("backend status %d", e.Status)
}

// StatusOf возвращает HTTP-статус бэкенда из цепочки ошибок (0, если его нет).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}
