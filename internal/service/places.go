package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/hbnb-web/internal/metrics"
	"github.com/pribylovaa/hbnb-web/internal/models"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/pkg/log"
)

// Ключ кэша для списка мест, запрошенного без токена.
const anonymousListKey = "anonymous"

// Listings возвращает список мест для главной страницы.
//
// Токен передаётся в бэкенд только для аутентифицированной сессии.
// Анонимный список берётся из кэша, если он включён; ошибки кэша
// не прерывают запрос.
func (s *Service) Listings(ctx context.Context, sess session.State) ([]models.Place, error) {
	const op = "service.places.Listings"

	lg := log.From(ctx)

	if sess.Authenticated() {
		places, err := s.backend.ListPlaces(ctx, sess.Token)
		if err != nil {
			lg.Error("listings_backend_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return places, nil
	}

	if s.cache != nil {
		places, ok, err := s.cache.Get(ctx, anonymousListKey)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			lg.Warn("listings_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		case ok:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return places, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	places, err := s.backend.ListPlaces(ctx, "")
	if err != nil {
		lg.Error("listings_backend_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, anonymousListKey, places, s.cacheTTL); err != nil {
			lg.Warn("listings_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Debug("listings_ok",
		slog.String("op", op),
		slog.Int("items", len(places)),
	)

	return places, nil
}

// PlaceDetail возвращает место по id; токен — только для аутентифицированной сессии.
//
// Ошибки:
// - ErrMissingPlaceID — пустой id, бэкенд не вызывается;
// - ошибки клиента прокидываются обёрнутыми (404 — clients.APIError).
func (s *Service) PlaceDetail(ctx context.Context, id string, sess session.State) (*models.Place, error) {
	const op = "service.places.PlaceDetail"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingPlaceID)
	}

	token := ""
	if sess.Authenticated() {
		token = sess.Token
	}

	place, err := s.backend.Place(ctx, id, token)
	if err != nil {
		log.From(ctx).Warn("place_detail_backend_error",
			slog.String("op", op),
			slog.String("id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return place, nil
}
