package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/hbnb-web/internal/clients"
	apierrors "github.com/pribylovaa/hbnb-web/internal/errors"
	"github.com/pribylovaa/hbnb-web/internal/service"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/internal/view"
	logctx "github.com/pribylovaa/hbnb-web/pkg/log"
)

// Предел тела POST-формы: текст отзыва или логин с паролем.
const maxFormBytes = 64 << 10

// Текст ошибки для тела формы, которое не удалось разобрать.
const msgBadForm = "Invalid form data"

// Handlers агрегирует зависимости страниц.
type Handlers struct {
	Service  *service.Service
	Sessions *session.Manager
	View     view.Renderer
}

func New(svc *service.Service, sessions *session.Manager, renderer view.Renderer) *Handlers {
	return &Handlers{Service: svc, Sessions: sessions, View: renderer}
}

// render — страница целиком рендерится в буфер, затем пишется статус.
// Ошибка шаблона превращается в 500 через apierrors.WriteError.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.View.Render(&buf, name, data); err != nil {
		logctx.From(r.Context()).Error("render_failed",
			slog.String("template", name),
			slog.String("err", err.Error()),
		)
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// failureStatus — статус страницы при ошибке вызова бэкенда: его 4xx
// пробрасываются, остальное (3xx, 5xx, сеть) маппится через apierrors.
func failureStatus(err error) int {
	if status := clients.StatusOf(err); status >= 400 && status < 500 {
		return status
	}

	status, _ := apierrors.ToHTTP(err)
	return status
}

// parseForm ограничивает тело формы и разбирает его.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

func layout(r *http.Request, title string) view.Layout {
	return view.Layout{
		Title:         title,
		Authenticated: session.From(r.Context()).Authenticated(),
		RequestID:     r.Header.Get("X-Request-Id"),
	}
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
