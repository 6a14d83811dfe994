package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/hbnb-web/internal/clients"
	"github.com/pribylovaa/hbnb-web/internal/models"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/mocks"
)

// Файл unit-тестов сервисного слоя.
//
// Покрываем:
//  - Listings: токен только для сессии, кэш анонимного списка, ошибки кэша не фатальны;
//  - PlaceDetail: пустой id без сетевого вызова, прокидка 404;
//  - SubmitReview: проверки до сети, тело запроса, ошибки бэкенда;
//  - тексты ошибок отзыва и логина.

var (
	anon = session.State{Status: session.StatusAnonymous}
	user = session.State{Status: session.StatusAuthenticated, Token: "tok", UserID: "u-1"}
)

const cacheTTL = 30 * time.Second

func TestListings_Authenticated_BypassesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	c := mocks.NewMockPlacesCache(ctrl)

	want := []models.Place{{ID: "1", Price: 10}}
	be.EXPECT().ListPlaces(gomock.Any(), "tok").Return(want, nil)

	got, err := New(be, c, cacheTTL).Listings(context.Background(), user)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestListings_Anonymous_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	c := mocks.NewMockPlacesCache(ctrl)

	want := []models.Place{{ID: "1"}}
	c.EXPECT().Get(gomock.Any(), anonymousListKey).Return(want, true, nil)

	got, err := New(be, c, cacheTTL).Listings(context.Background(), anon)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestListings_Anonymous_CacheMiss_FetchesWithoutTokenAndStores(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	c := mocks.NewMockPlacesCache(ctrl)

	want := []models.Place{{ID: "1"}, {ID: "2"}}
	gomock.InOrder(
		c.EXPECT().Get(gomock.Any(), anonymousListKey).Return(nil, false, nil),
		be.EXPECT().ListPlaces(gomock.Any(), "").Return(want, nil),
		c.EXPECT().Set(gomock.Any(), anonymousListKey, want, cacheTTL).Return(nil),
	)

	got, err := New(be, c, cacheTTL).Listings(context.Background(), anon)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// Ошибки кэша не прерывают запрос.
func TestListings_Anonymous_CacheErrorsIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	c := mocks.NewMockPlacesCache(ctrl)

	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
	be.EXPECT().ListPlaces(gomock.Any(), "").Return([]models.Place{{ID: "1"}}, nil)
	c.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := New(be, c, cacheTTL).Listings(context.Background(), anon)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestListings_NilCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	be.EXPECT().ListPlaces(gomock.Any(), "").Return(nil, nil)

	_, err := New(be, nil, 0).Listings(context.Background(), anon)
	require.NoError(t, err)
}

// Просроченная сессия ведёт себя как анонимная: токен не уходит в бэкенд.
func TestListings_ExpiredSession_NoToken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	be.EXPECT().ListPlaces(gomock.Any(), "").Return(nil, nil)

	expired := session.State{Status: session.StatusExpired, Token: "old"}
	_, err := New(be, nil, 0).Listings(context.Background(), expired)
	require.NoError(t, err)
}

func TestListings_BackendError_NotCached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	c := mocks.NewMockPlacesCache(ctrl)

	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	be.EXPECT().ListPlaces(gomock.Any(), "").Return(nil, clients.ErrUnavailable)

	_, err := New(be, c, cacheTTL).Listings(context.Background(), anon)
	require.ErrorIs(t, err, clients.ErrUnavailable)
}

func TestPlaceDetail_MissingID_NoNetwork(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)

	_, err := New(be, nil, 0).PlaceDetail(context.Background(), "  ", user)
	require.ErrorIs(t, err, ErrMissingPlaceID)
}

func TestPlaceDetail_TokenOnlyWhenAuthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)

	gomock.InOrder(
		be.EXPECT().Place(gomock.Any(), "p-1", "tok").Return(&models.Place{ID: "p-1"}, nil),
		be.EXPECT().Place(gomock.Any(), "p-1", "").Return(&models.Place{ID: "p-1"}, nil),
	)

	svc := New(be, nil, 0)

	p, err := svc.PlaceDetail(context.Background(), "p-1", user)
	require.NoError(t, err)
	require.Equal(t, "p-1", p.ID)

	_, err = svc.PlaceDetail(context.Background(), "p-1", anon)
	require.NoError(t, err)
}

func TestPlaceDetail_NotFound_Propagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	be.EXPECT().Place(gomock.Any(), "x", "").Return(nil, &clients.APIError{Status: http.StatusNotFound})

	_, err := New(be, nil, 0).PlaceDetail(context.Background(), "x", anon)
	require.Equal(t, http.StatusNotFound, clients.StatusOf(err))
}

// Некорректный ввод не приводит к сетевому вызову: мок без ожиданий упадёт на любом вызове.
func TestSubmitReview_Validation_NoNetwork(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		sess session.State
		in   ReviewInput
		want error
	}{
		{"anonymous", anon, ReviewInput{PlaceID: "p", Text: "t", Rating: "5"}, ErrNotAuthenticated},
		{"expired", session.State{Status: session.StatusExpired, Token: "x"}, ReviewInput{PlaceID: "p", Text: "t", Rating: "5"}, ErrNotAuthenticated},
		{"no_subject", session.State{Status: session.StatusAuthenticated, Token: "x"}, ReviewInput{PlaceID: "p", Text: "t", Rating: "5"}, ErrInvalidToken},
		{"empty_text", user, ReviewInput{PlaceID: "p", Text: "", Rating: "5"}, ErrMissingFields},
		{"blank_text", user, ReviewInput{PlaceID: "p", Text: "   ", Rating: "5"}, ErrMissingFields},
		{"rating_zero", user, ReviewInput{PlaceID: "p", Text: "t", Rating: "0"}, ErrMissingFields},
		{"rating_empty", user, ReviewInput{PlaceID: "p", Text: "t", Rating: ""}, ErrMissingFields},
		{"rating_garbage", user, ReviewInput{PlaceID: "p", Text: "t", Rating: "five"}, ErrMissingFields},
		{"no_place", user, ReviewInput{PlaceID: "", Text: "t", Rating: "5"}, ErrMissingFields},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			be := mocks.NewMockBackend(ctrl)

			err := New(be, nil, 0).SubmitReview(context.Background(), tc.sess, tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSubmitReview_SendsRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)

	be.EXPECT().
		CreateReview(gomock.Any(), models.CreateReviewRequest{
			PlaceID: "p-1", Text: "Great stay", Rating: 4, UserID: "u-1",
		}, "tok").
		Return(nil)

	err := New(be, nil, 0).SubmitReview(context.Background(), user,
		ReviewInput{PlaceID: " p-1 ", Text: "  Great stay ", Rating: " 4"})
	require.NoError(t, err)
}

func TestSubmitReview_BackendError_Wrapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	be.EXPECT().CreateReview(gomock.Any(), gomock.Any(), "tok").
		Return(&clients.APIError{Status: http.StatusConflict, Message: "dup"})

	err := New(be, nil, 0).SubmitReview(context.Background(), user,
		ReviewInput{PlaceID: "p", Text: "t", Rating: "3"})
	require.Equal(t, http.StatusConflict, clients.StatusOf(err))
	require.Equal(t, MsgAlreadyReviewed, ReviewFailureMessage(err))
}

func TestReviewStatusMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, MsgAlreadyReviewed, ReviewStatusMessage(http.StatusConflict, "body text"))
	require.Equal(t, MsgOwnPlace, ReviewStatusMessage(http.StatusForbidden, "body text"))
	require.Equal(t, MsgInvalidReview, ReviewStatusMessage(http.StatusBadRequest, ""))
	require.Equal(t, "Place not found", ReviewStatusMessage(http.StatusNotFound, "Place not found"))
	require.Equal(t, MsgReviewFailed, ReviewStatusMessage(http.StatusInternalServerError, ""))
}

func TestReviewFailureMessage(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not_authenticated", fmt.Errorf("x: %w", ErrNotAuthenticated), MsgLoginRequired},
		{"invalid_token", ErrInvalidToken, MsgInvalidToken},
		{"missing", ErrMissingFields, MsgFillAllFields},
		{"forbidden", &clients.APIError{Status: http.StatusForbidden}, MsgOwnPlace},
		{"conflict", fmt.Errorf("x: %w", &clients.APIError{Status: http.StatusConflict}), MsgAlreadyReviewed},
		{"body", &clients.APIError{Status: http.StatusUnprocessableEntity, Message: "Rating must be 1..5"}, "Rating must be 1..5"},
		{"network", fmt.Errorf("x: %w", clients.ErrUnavailable), MsgNetworkError},
		{"other", errors.New("boom"), MsgReviewFailed},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ReviewFailureMessage(tc.err))
		})
	}
}

func TestParseRating(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, ParseRating("5"))
	require.Equal(t, 3, ParseRating(" 3 "))
	require.Zero(t, ParseRating(""))
	require.Zero(t, ParseRating("abc"))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	be := mocks.NewMockBackend(ctrl)
	be.EXPECT().Login(gomock.Any(), "john@example.com", "pw").Return("tok-1", nil)

	svc := New(be, nil, 0)

	tok, err := svc.Login(context.Background(), " john@example.com ", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)

	_, err = svc.Login(context.Background(), "", "pw")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestLoginFailureMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Login failed: UNAUTHORIZED",
		LoginFailureMessage(&clients.APIError{Status: 401, StatusText: "UNAUTHORIZED"}))
	require.Equal(t, "Login failed: backend unavailable",
		LoginFailureMessage(fmt.Errorf("x: %w", clients.ErrUnavailable)))
	require.Equal(t, MsgFillAllFields, LoginFailureMessage(ErrMissingFields))
	require.Empty(t, LoginFailureMessage(nil))
}
