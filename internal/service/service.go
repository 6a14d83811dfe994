// service содержит логику страниц hbnb-web: сбор данных для шаблонов,
// проверку формы отзыва и тексты ошибок для пользователя.
package service

//go:generate mockgen -destination=../../mocks/mock_backend.go -package=mocks github.com/pribylovaa/hbnb-web/internal/service Backend,PlacesCache

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/hbnb-web/internal/models"
)

var (
	// ErrMissingFields — не заполнены поля формы; запрос в бэкенд не выполняется.
	ErrMissingFields = errors.New("missing fields")
	// ErrNotAuthenticated — действие требует сессии.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidToken — токен разобран, но без идентификатора пользователя.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingPlaceID — не передан id места.
	ErrMissingPlaceID = errors.New("missing place id")
)

// Backend — REST API HBnB (реализация: internal/clients.Client).
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListPlaces(ctx context.Context, token string) ([]models.Place, error)
	Place(ctx context.Context, id, token string) (*models.Place, error)
	CreateReview(ctx context.Context, in models.CreateReviewRequest, token string) error
}

// PlacesCache — кэш анонимного списка мест (реализация: internal/cache).
type PlacesCache interface {
	Get(ctx context.Context, key string) ([]models.Place, bool, error)
	Set(ctx context.Context, key string, places []models.Place, ttl time.Duration) error
}

// Service — логика страниц hbnb-web.
type Service struct {
	backend  Backend
	cache    PlacesCache
	cacheTTL time.Duration
}

// New создает новый экземпляр Service. cache == nil отключает кэширование.
func New(backend Backend, cache PlacesCache, cacheTTL time.Duration) *Service {
	return &Service{
		backend:  backend,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}
