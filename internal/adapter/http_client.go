package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/models"
)

// HTTPClientConfig configures the REST remote store.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client  *resty.Client
	baseURL string
	logger  *logger.Logger
}

// NewHTTPRemoteStore constructs a [RemoteStore] over resty with sane
// defaults: base URL http://localhost:8080 and a 15 second request timeout.
func NewHTTPRemoteStore(cfg HTTPClientConfig, log *logger.Logger) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli, baseURL: baseURL, logger: log}
}

func (h *httpRemoteStore) List(ctx context.Context) ([]models.Wine, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/wines")
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var wines []models.Wine
	if err = json.Unmarshal(resp.Body(), &wines); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return wines, nil
}

func (h *httpRemoteStore) Get(ctx context.Context, id int64) (models.Wine, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/wines/%d", id))
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: get request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wine{}, err
	}

	return decodeWine(resp.Body())
}

func (h *httpRemoteStore) Create(ctx context.Context, wine models.Wine) (models.Wine, error) {
	// a locally drafted record must not leak its provisional identifier
	wire := wine
	if !wire.HasServerID() {
		wire.ID = 0
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wire).
		Post("/wines")
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wine{}, err
	}

	return decodeWine(resp.Body())
}

func (h *httpRemoteStore) Update(ctx context.Context, wine models.Wine) (models.Wine, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wine).
		Put(fmt.Sprintf("/wines/%d", wine.ID))
	if err != nil {
		return models.Wine{}, fmt.Errorf("%w: update request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Wine{}, err
	}

	return decodeWine(resp.Body())
}

func (h *httpRemoteStore) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/wines/%d", id))
	if err != nil {
		return fmt.Errorf("%w: delete request: %v", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// WSEndpoint derives the push-channel URL from the REST base endpoint.
func (h *httpRemoteStore) WSEndpoint() string {
	ws := h.baseURL
	switch {
	case strings.HasPrefix(ws, "https://"):
		ws = "wss://" + strings.TrimPrefix(ws, "https://")
	case strings.HasPrefix(ws, "http://"):
		ws = "ws://" + strings.TrimPrefix(ws, "http://")
	}
	return ws + "/ws"
}

func decodeWine(body []byte) (models.Wine, error) {
	var wine models.Wine
	if err := json.Unmarshal(body, &wine); err != nil {
		return models.Wine{}, fmt.Errorf("decode wine response: %w", err)
	}
	return wine, nil
}

// mapHTTPError maps the response status onto the package sentinels: nil for
// 2xx, ErrServerFault for 5xx, ErrClientFault for every other non-2xx code.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrServerFault, code, body)
	}

	return fmt.Errorf("%w: http %d: %s", ErrClientFault, code, body)
}
