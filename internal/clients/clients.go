package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/hbnb-web/internal/clients/interceptors"
	"github.com/pribylovaa/hbnb-web/internal/config"
	"github.com/pribylovaa/hbnb-web/internal/models"
)

const (
	pathLogin  = "/api/v1/auth/login"
	pathPlaces = "/api/v1/places"

	// Ограничение на размер тела ответа бэкенда.
	maxBodyBytes = 4 << 20

	// Flask отвечает 308 на путь без завершающего слэша; цепочки длиннее не ждём.
	maxRedirects = 3
)

// Client — REST-клиент HBnB API.
// Bearer-заголовок добавляется только при непустом токене.
type Client struct {
	http        *http.Client
	baseURL     *url.URL
	reviewsPath string
	timeout     time.Duration
}

// New собирает клиент с цепочкой транспорта: metadata -> metrics -> logging.
func New(cfg config.Config, log *slog.Logger) (*Client, error) {
	const op = "internal/clients/New"

	base, err := url.Parse(strings.TrimRight(cfg.Backend.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("%s: invalid backend url %q", op, cfg.Backend.BaseURL)
	}

	transport := interceptors.Chain(
		http.DefaultTransport.(*http.Transport).Clone(),
		interceptors.WithMetadata(cfg.Backend.UserAgent),
		interceptors.Metrics(),
		interceptors.Logging(log),
	)

	return NewWithTransport(base, cfg.Backend.ReviewsPath, cfg.Timeouts.Backend, transport), nil
}

// NewWithTransport — клиент поверх произвольного транспорта.
func NewWithTransport(base *url.URL, reviewsPath string, timeout time.Duration, rt http.RoundTripper) *Client {
	if reviewsPath == "" {
		reviewsPath = "/api/v1/reviews/"
	}

	return &Client{
		http: &http.Client{
			Transport:     rt,
			CheckRedirect: checkRedirect,
		},
		baseURL:     base,
		reviewsPath: reviewsPath,
		timeout:     timeout,
	}
}

// checkRedirect следует 307/308 (метод и тело сохраняются) и GET-редиректам.
// Редирект, меняющий метод (301/302/303 на POST), возвращается как ответ.
func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}

	if req.Method != via[0].Method {
		return http.ErrUseLastResponse
	}

	return nil
}

// Close закрывает простаивающие соединения.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Login — POST /auth/login, возвращает access-токен.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const op = "internal/clients/Login"

	var out models.LoginResponse
	in := models.LoginRequest{Email: email, Password: password}

	if err := c.do(ctx, "login", http.MethodPost, pathLogin, "", in, &out); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if out.AccessToken == "" {
		return "", fmt.Errorf("%s: empty access_token: %w", op, ErrBadResponse)
	}

	return out.AccessToken, nil
}

// ListPlaces — GET /places. Принимает обе формы ответа: {"places":[...]} и [...].
func (c *Client) ListPlaces(ctx context.Context, token string) ([]models.Place, error) {
	const op = "internal/clients/ListPlaces"

	var raw json.RawMessage
	if err := c.do(ctx, "list_places", http.MethodGet, pathPlaces, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	places, err := decodePlaces(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadResponse, err)
	}

	return places, nil
}

// Place — GET /places/{id}.
func (c *Client) Place(ctx context.Context, id, token string) (*models.Place, error) {
	const op = "internal/clients/Place"

	var out models.Place
	if err := c.do(ctx, "get_place", http.MethodGet, pathPlaces+"/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// CreateReview — POST <reviews path> с bearer-токеном.
func (c *Client) CreateReview(ctx context.Context, in models.CreateReviewRequest, token string) error {
	const op = "internal/clients/CreateReview"

	if err := c.do(ctx, "create_review", http.MethodPost, c.reviewsPath, token, in, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func decodePlaces(raw json.RawMessage) ([]models.Place, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.Place
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var env models.PlacesEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}

	return env.Places, nil
}

// do выполняет один вызов: сериализация тела, таймаут, разбор статуса.
// out == nil — тело успешного ответа игнорируется.
func (c *Client) do(ctx context.Context, opName, method, path, token string, in, out any) error {
	ctx = interceptors.WithOp(ctx, opName)
	ctx, cancel := interceptors.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	return nil
}

func apiError(resp *http.Response, data []byte) *APIError {
	var eb models.ErrorBody
	_ = json.Unmarshal(data, &eb)

	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		Status:     resp.StatusCode,
		StatusText: text,
		Message:    eb.Text(),
	}
}
