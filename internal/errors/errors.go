// errors стандартизирует ответы об ошибках HTTP-слоя hbnb-web.
// На вход он принимает ошибку сервиса или REST-клиента, а на выход даёт:
//   - корректный HTTP-статус страницы;
//   - короткий стабильный код и безопасное сообщение без деталей.
//
// Тексты конкретных страниц (баннеры списка, формы отзыва) задают хендлеры;
// здесь только общий маппинг.
package errors

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/pribylovaa/hbnb-web/internal/clients"
	"github.com/pribylovaa/hbnb-web/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат ошибки для страниц.
// Code — короткий стабильный код (используется как CSS-класс баннера и в логах).
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string
	Message   string
	RequestID string
}

// ToHTTP конвертирует ошибку в HTTP-статус и описание.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - ошибки проверки формы и сессии сервиса — 400/401;
//   - *clients.APIError — 4xx бэкенда пробрасываются, 5xx превращаются в 502;
//   - недоступность бэкенда и битый ответ — 502;
//   - дедлайн — 504, отмена клиентом — 499;
//   - прочее — 500/internal.
func ToHTTP(err error) (int, APIError) {
	if err == nil {
		return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}
	}

	var apiErr *clients.APIError

	switch {
	case errors.Is(err, service.ErrMissingFields):
		return http.StatusBadRequest, APIError{Code: "missing_fields", Message: service.MsgFillAllFields}
	case errors.Is(err, service.ErrMissingPlaceID):
		return http.StatusBadRequest, APIError{Code: "missing_place_id", Message: "Missing place id"}
	case errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized, APIError{Code: "unauthenticated", Message: service.MsgLoginRequired}
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, APIError{Code: "invalid_token", Message: service.MsgInvalidToken}
	case errors.As(err, &apiErr):
		return fromBackend(apiErr.Status)
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, APIError{Code: "canceled", Message: "canceled"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, APIError{Code: "deadline_exceeded", Message: "deadline exceeded"}
	case errors.Is(err, clients.ErrUnavailable), errors.Is(err, clients.ErrBadResponse):
		return http.StatusBadGateway, APIError{Code: "bad_gateway", Message: "backend unavailable"}
	default:
		return http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"}
	}
}

// ReadStatus — статус страницы при сбое чтения данных из бэкенда:
// 400/404 сохраняются, всё остальное — 502.
func ReadStatus(err error) int {
	status, _ := ToHTTP(err)
	if status == http.StatusNotFound || status == http.StatusBadRequest {
		return status
	}

	return http.StatusBadGateway
}

// WriteError — хелпер для случаев, когда страницу отрисовать нельзя (паника, сбой шаблона).
// Пишет минимальный HTML с кодом и request_id.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	_, _ = fmt.Fprintf(w, "<!DOCTYPE html><title>%d</title><p class=\"error %s\">%s</p>",
		status, html.EscapeString(resp.Code), html.EscapeString(resp.Message))
	if resp.RequestID != "" {
		_, _ = fmt.Fprintf(w, "<p><small>request id: %s</small></p>", html.EscapeString(resp.RequestID))
	}
}

// fromBackend — маппинг статуса бэкенда:
//   - 400 -> 400/invalid_argument
//   - 401 -> 401/unauthenticated
//   - 403 -> 403/permission_denied
//   - 404 -> 404/not_found
//   - 409 -> 409/already_exists
//   - 429 -> 429/resource_exhausted
//   - прочие 4xx -> как есть/backend_rejected
//   - 5xx и неожиданные -> 502/bad_gateway
func fromBackend(status int) (int, APIError) {
	switch status {
	case http.StatusBadRequest:
		return status, APIError{Code: "invalid_argument", Message: "invalid argument"}
	case http.StatusUnauthorized:
		return status, APIError{Code: "unauthenticated", Message: "unauthenticated"}
	case http.StatusForbidden:
		return status, APIError{Code: "permission_denied", Message: "permission denied"}
	case http.StatusNotFound:
		return status, APIError{Code: "not_found", Message: "not found"}
	case http.StatusConflict:
		return status, APIError{Code: "already_exists", Message: "already exists"}
	case http.StatusTooManyRequests:
		return status, APIError{Code: "resource_exhausted", Message: "resource exhausted"}
	}

	if status >= 400 && status < 500 {
		return status, APIError{Code: "backend_rejected", Message: "request rejected"}
	}

	return http.StatusBadGateway, APIError{Code: "bad_gateway", Message: "backend error"}
}
