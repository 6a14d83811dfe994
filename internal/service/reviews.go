package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/pribylovaa/hbnb-web/internal/clients"
	"github.com/pribylovaa/hbnb-web/internal/models"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/pkg/log"
)

// Тексты для пользователя на форме отзыва.
const (
	MsgLoginRequired   = "You must be logged in to submit a review."
	MsgInvalidToken    = "Invalid authentication token."
	MsgFillAllFields   = "Please fill in all fields."
	MsgNetworkError    = "Network error: Unable to submit review"
	MsgReviewFailed    = "Failed to submit review"
	MsgOwnPlace        = "You cannot review your own place"
	MsgAlreadyReviewed = "You have already reviewed this place"
	MsgInvalidReview   = "Invalid review data"
)

// ReviewInput — сырые значения формы отзыва.
type ReviewInput struct {
	PlaceID string
	Text    string
	Rating  string
}

// ParseRating — целое из поля формы; пустое или нечисловое значение даёт 0.
func ParseRating(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	return n
}

// SubmitReview проверяет форму и отправляет отзыв от имени пользователя сессии.
//
// Порядок проверок (все до сетевого вызова):
// - сессия не аутентифицирована -> ErrNotAuthenticated;
// - пустой sub в токене -> ErrInvalidToken;
// - пустой place id, пустой текст после trim или rating == 0 -> ErrMissingFields.
func (s *Service) SubmitReview(ctx context.Context, sess session.State, in ReviewInput) error {
	const op = "service.reviews.SubmitReview"

	if !sess.Authenticated() {
		return fmt.Errorf("%s: %w", op, ErrNotAuthenticated)
	}

	if sess.UserID == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	req := models.CreateReviewRequest{
		PlaceID: strings.TrimSpace(in.PlaceID),
		Text:    strings.TrimSpace(in.Text),
		Rating:  ParseRating(in.Rating),
		UserID:  sess.UserID,
	}

	if req.PlaceID == "" || req.Text == "" || req.Rating == 0 {
		return fmt.Errorf("%s: %w", op, ErrMissingFields)
	}

	lg := log.From(ctx)
	if err := s.backend.CreateReview(ctx, req, sess.Token); err != nil {
		lg.Warn("review_submit_failed",
			slog.String("op", op),
			slog.String("place_id", req.PlaceID),
			slog.Int("status", clients.StatusOf(err)),
			slog.String("err", err.Error()),
		)

		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("review_submitted",
		slog.String("op", op),
		slog.String("place_id", req.PlaceID),
		slog.Int("rating", req.Rating),
	)

	return nil
}

// ReviewStatusMessage — текст ошибки по статусу ответа бэкенда.
// Известные статусы важнее текста из тела ответа.
func ReviewStatusMessage(status int, bodyMsg string) string {
	switch status {
	case http.StatusForbidden:
		return MsgOwnPlace
	case http.StatusConflict:
		return MsgAlreadyReviewed
	case http.StatusBadRequest:
		return MsgInvalidReview
	}

	if bodyMsg != "" {
		return bodyMsg
	}

	return MsgReviewFailed
}

// ReviewFailureMessage — текст для формы по ошибке SubmitReview.
func ReviewFailureMessage(err error) string {
	var apiErr *clients.APIError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotAuthenticated):
		return MsgLoginRequired
	case errors.Is(err, ErrInvalidToken):
		return MsgInvalidToken
	case errors.Is(err, ErrMissingFields):
		return MsgFillAllFields
	case errors.As(err, &apiErr):
		return ReviewStatusMessage(apiErr.Status, apiErr.Message)
	case errors.Is(err, clients.ErrUnavailable):
		return MsgNetworkError
	default:
		return MsgReviewFailed
	}
}
