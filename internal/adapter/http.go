package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/utils"
	"github.com/MKhiriev/go-book-keeper/models"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	maxRetries   uint64
	retryBackOff func() backoff.BackOff

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. adapterCfg.RateLimit caps outgoing requests per second (zero means
// unlimited); adapterCfg.MaxRetries bounds retries of idempotent reads.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	maxRetries := adapterCfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &httpServerAdapter{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		limiter:      newLimiter(adapterCfg.RateLimit),
		ids:          utils.NewUUIDGenerator(),
		maxRetries:   uint64(maxRetries),
		retryBackOff: defaultBackOff,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	normalized := utils.NormalizeBaseURL(raw)
	if normalized == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return normalized, nil
}

// newLimiter turns requests/sec into a limiter; non-positive means no limit.
func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, identifier, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", models.LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
}

// Register implements [ServerAdapter]. It POSTs the new account to
// POST /api/auth/register and stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, username, email, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	req, err := h.request(ctx, false)
	if err != nil {
		return models.AuthResponse{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: auth request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if authResp.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: empty token in %s response", ErrInvalidResponse, path)
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// GetProfile implements [ServerAdapter]. GET /api/users/me, retried on
// transport failures.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	var user models.User

	err := h.withRetry(ctx, "GetProfile", func() error {
		req, err := h.request(ctx, true)
		if err != nil {
			return err
		}
		resp, err := req.SetResult(&user).Get("/api/users/me")
		if err != nil {
			return fmt.Errorf("%w: profile request: %v", ErrNetwork, err)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// TestConnection implements [ServerAdapter]. GET /api/health; any 2xx is
// healthy.
func (h *httpServerAdapter) TestConnection(ctx context.Context) error {
	return h.withRetry(ctx, "TestConnection", func() error {
		req, err := h.request(ctx, false)
		if err != nil {
			return err
		}
		resp, err := req.Get("/api/health")
		if err != nil {
			return fmt.Errorf("%w: health request: %v", ErrNetwork, err)
		}
		return mapHTTPError(resp)
	})
}

// ListItems implements [ServerAdapter]. GET /api/books.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.RemoteBook, error) {
	var books []models.RemoteBook

	err := h.withRetry(ctx, "ListItems", func() error {
		books = nil
		req, err := h.request(ctx, true)
		if err != nil {
			return err
		}
		resp, err := req.SetResult(&books).Get("/api/books")
		if err != nil {
			return fmt.Errorf("%w: list books request: %v", ErrNetwork, err)
		}
		return mapHTTPError(resp)
	})
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.RemoteBook{}
	}

	return books, nil
}

// CreateItem implements [ServerAdapter]. POST /api/books. Not retried: a
// lost response could otherwise create the book twice.
func (h *httpServerAdapter) CreateItem(ctx context.Context, book models.RemoteBook) (models.RemoteBook, error) {
	book.ID = 0
	return h.writeBook(ctx, resty.MethodPost, "/api/books", book)
}

// UpdateItem implements [ServerAdapter]. PUT /api/books/{id}.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, id int64, book models.RemoteBook) (models.RemoteBook, error) {
	book.ID = id
	return h.writeBook(ctx, resty.MethodPut, "/api/books/"+strconv.FormatInt(id, 10), book)
}

func (h *httpServerAdapter) writeBook(ctx context.Context, method, path string, book models.RemoteBook) (models.RemoteBook, error) {
	var stored models.RemoteBook

	req, err := h.request(ctx, true)
	if err != nil {
		return models.RemoteBook{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(book).
		SetResult(&stored).
		Execute(method, path)
	if err != nil {
		return models.RemoteBook{}, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteBook{}, err
	}
	if stored.ID == 0 {
		return models.RemoteBook{}, fmt.Errorf("%w: %s %s returned no book id", ErrInvalidResponse, method, path)
	}

	return stored, nil
}

// request waits for the rate limiter and prepares a request carrying a fresh
// request id and, when authed is set, the bearer token.
func (h *httpServerAdapter) request(ctx context.Context, authed bool) (*resty.Request, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrNetwork, err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.ids.Generate())
	if !authed {
		return req, nil
	}

	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, nil
}

// withRetry repeats op with exponential backoff while it fails with a
// retryable error and ctx is alive.
func (h *httpServerAdapter) withRetry(ctx context.Context, name string, op func() error) error {
	var (
		attempt int
		lastErr error
	)
	operation := func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) || ctx.Err() != nil {
			return backoff.Permanent(err)
		}

		h.logger.Debug().
			Err(err).
			Str("func", "httpServerAdapter."+name).
			Int("attempt", attempt).
			Msg("retryable request failure")
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(h.retryBackOff(), h.maxRetries), ctx)
	err := backoff.Retry(operation, b)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	// a cancelled ctx surfaces as the bare context error; keep the request one
	if err != nil && lastErr != nil && errors.Is(err, ctx.Err()) {
		return lastErr
	}
	return err
}
