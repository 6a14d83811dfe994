package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/hbnb-web/internal/clients/interceptors"
)

// Предел длины входящего X-Request-Id.
const maxRequestIDLen = 64

// RequestID обеспечивает наличие X-Request-Id. Входящий id принимается,
// только если он короткий и состоит из [A-Za-z0-9._-]: он выводится в подвале
// страницы и уходит в бэкенд. Иначе генерируется uuid.
// id кладётся в заголовки запроса и ответа и в контекст (interceptors.CtxRequestID).
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if !validRequestID(id) {
				id = uuid.NewString()
				r.Header.Set("X-Request-Id", id)
			}
			w.Header().Set("X-Request-Id", id)

			ctx := context.WithValue(r.Context(), interceptors.CtxRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}

	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}

	return true
}
