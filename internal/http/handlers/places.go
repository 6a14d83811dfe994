package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/pribylovaa/hbnb-web/internal/errors"
	"github.com/pribylovaa/hbnb-web/internal/service"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/internal/view"
)

const (
	msgListFailed   = "Error: Failed to fetch places"
	msgDetailFailed = "Could not fetch place details"
	msgMissingID    = "Missing place id"
)

// Index — список мест с фильтром цены (?price=All|10|50|100).
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	filter := view.NormalizeFilter(r.URL.Query().Get("price"))

	page := view.IndexPage{
		Layout:        layout(r, "Places"),
		Filter:        filter,
		FilterOptions: view.FilterOptions,
	}

	places, err := h.Service.Listings(r.Context(), session.From(r.Context()))
	if err != nil {
		page.Error = msgListFailed
		h.render(w, r, http.StatusBadGateway, "index", page)
		return
	}

	page.Cards = view.ApplyPriceFilter(places, filter)
	h.render(w, r, http.StatusOK, "index", page)
}

// Place — детальная страница места (?id=...). Форма отзыва встраивается
// только для аутентифицированной сессии.
func (h *Handlers) Place(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	sess := session.From(r.Context())

	page := view.PlacePage{
		Layout:    layout(r, "Place"),
		CanReview: sess.Authenticated(),
		Review:    view.ReviewForm{PlaceID: id},
	}

	place, err := h.Service.PlaceDetail(r.Context(), id, sess)
	if err != nil {
		page.Error = msgDetailFailed
		if errors.Is(err, service.ErrMissingPlaceID) {
			page.Error = msgMissingID
		}
		page.CanReview = false

		h.render(w, r, apierrors.ReadStatus(err), "place", page)
		return
	}

	page.Title = place.Title
	page.Place = place
	h.render(w, r, http.StatusOK, "place", page)
}
