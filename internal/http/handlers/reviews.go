package handlers

import (
	"net/http"
	"net/url"
	"strings"

	apierrors "github.com/pribylovaa/hbnb-web/internal/errors"
	"github.com/pribylovaa/hbnb-web/internal/service"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/internal/view"
)

// ReviewFragment — форма отзыва без layout (GET /fragments/add_review?id=...).
// Анонимной сессии фрагмент не отдаётся.
func (h *Handlers) ReviewFragment(w http.ResponseWriter, r *http.Request) {
	if !session.From(r.Context()).Authenticated() {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		apierrors.WriteError(w, r, service.ErrMissingPlaceID)
		return
	}

	h.render(w, r, http.StatusOK, "add_review_section", view.ReviewForm{PlaceID: id})
}

// AddReviewPage — отдельная страница формы; анонимная сессия уходит на главную.
func (h *Handlers) AddReviewPage(w http.ResponseWriter, r *http.Request) {
	if !session.From(r.Context()).Authenticated() {
		redirect(w, r, "/")
		return
	}

	h.render(w, r, http.StatusOK, "add_review", view.ReviewPage{
		Layout: layout(r, "Add a Review"),
		Form:   view.ReviewForm{PlaceID: r.URL.Query().Get("id")},
	})
}

// SubmitReview — POST формы отзыва. Успех — 303 на страницу места,
// ошибка — форма с введёнными значениями и текстом ошибки.
func (h *Handlers) SubmitReview(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.render(w, r, http.StatusBadRequest, "add_review", view.ReviewPage{
			Layout: layout(r, "Add a Review"),
			Form:   view.ReviewForm{PlaceID: r.URL.Query().Get("id"), Message: msgBadForm},
		})
		return
	}

	form := view.ReviewForm{
		PlaceID: strings.TrimSpace(r.PostForm.Get("place_id")),
		Text:    r.PostForm.Get("text"),
		Rating:  strings.TrimSpace(r.PostForm.Get("rating")),
	}
	if form.PlaceID == "" {
		form.PlaceID = strings.TrimSpace(r.URL.Query().Get("id"))
	}

	err := h.Service.SubmitReview(r.Context(), session.From(r.Context()), service.ReviewInput{
		PlaceID: form.PlaceID,
		Text:    form.Text,
		Rating:  form.Rating,
	})
	if err == nil {
		redirect(w, r, "/place?id="+url.QueryEscape(form.PlaceID))
		return
	}

	form.Message = service.ReviewFailureMessage(err)
	h.render(w, r, failureStatus(err), "add_review", view.ReviewPage{
		Layout: layout(r, "Add a Review"),
		Form:   form,
	})
}
