// Package workspace is the HTTP client for the remote document workspace
// (a Notion-style REST API). It drains cursor pagination internally and
// always hands fully materialised, ordered slices back to callers.
package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

const (
	DefaultBaseURL    = "https://api.notion.com/v1"
	DefaultAPIVersion = "2022-06-28"
	DefaultPageSize   = 100
	versionHeader     = "Notion-Version"
)

const (
	textCodeRequestFailed = "WORKSPACE_REQUEST_FAILED"
	textCodeNotFound      = "WORKSPACE_NOT_FOUND"
	textCodeDecodeFailed  = "WORKSPACE_DECODE_FAILED"
	textCodeInvalidID     = "WORKSPACE_INVALID_ID"
)

var (
	ErrTokenRequired = errors.New("workspace client: api token is required")
	ErrCursorLoop    = errors.New("workspace client: pagination cursor repeated")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("workspace %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Config configures a Client. Zero values fall back to the package defaults.
type Config struct {
	BaseURL     string
	Token       string
	APIVersion  string
	PageSize    int
	Timeout     time.Duration
	MaxAttempts uint
	RetryDelay  time.Duration
	HTTPClient  *http.Client
	Logger      interfaces.Logger
}

// Client talks to the workspace API. Build one per process and share it; it
// holds no per-request state.
type Client struct {
	baseURL    string
	token      string
	apiVersion string
	pageSize   int
	attempts   uint
	delay      time.Duration
	http       *http.Client
	logger     interfaces.Logger
}

// NewClient validates cfg and returns a ready client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrTokenRequired
	}

	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:      strings.TrimSpace(cfg.Token),
		apiVersion: cfg.APIVersion,
		pageSize:   cfg.PageSize,
		attempts:   cfg.MaxAttempts,
		delay:      cfg.RetryDelay,
		http:       cfg.HTTPClient,
		logger:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.apiVersion == "" {
		c.apiVersion = DefaultAPIVersion
	}
	if c.pageSize <= 0 || c.pageSize > DefaultPageSize {
		c.pageSize = DefaultPageSize
	}
	if c.attempts == 0 {
		c.attempts = 3
	}
	if c.delay <= 0 {
		c.delay = 500 * time.Millisecond
	}
	if c.http == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		c.http = &http.Client{Timeout: timeout}
	}
	if c.logger == nil {
		c.logger = logging.NoOp()
	}
	return c, nil
}

// do sends one API request, retrying transport failures, 429 and 5xx
// responses. Other 4xx responses and decode failures are returned at once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("workspace client: encode request: %w", err)
		}
		payload = encoded
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	logger := logging.WithFields(c.logger, map[string]any{"method": method, "path": path})

	err := retry.Do(
		func() error {
			return c.send(ctx, method, endpoint, path, payload, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warn("workspace.request.retry", "attempt", attempt+1, "error", err)
		}),
	)
	if err == nil {
		logger.Debug("workspace.request.completed")
		return nil
	}
	return wrapRequestError(err)
}

func (c *Client) send(ctx context.Context, method, endpoint, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return retry.Unrecoverable(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set(versionHeader, c.apiVersion)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Unrecoverable(&decodeError{path: path, err: err})
	}
	return nil
}

type decodeError struct {
	path string
	err  error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("workspace client: decode %s: %v", e.path, e.err)
}

func (e *decodeError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	if !retry.IsRecoverable(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.retryable()
	}
	return true
}

func wrapRequestError(err error) error {
	var status *StatusError
	if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
		return goerrors.Wrap(err, goerrors.CategoryNotFound, "workspace resource not found").
			WithTextCode(textCodeNotFound)
	}
	var decode *decodeError
	if errors.As(err, &decode) {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "workspace response could not be decoded").
			WithTextCode(textCodeDecodeFailed)
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "workspace request failed").
		WithTextCode(textCodeRequestFailed)
}

// NormalizeID accepts dashed or undashed ids and returns the canonical
// dashed form.
func NormalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("workspace id %q is invalid", id)).
			WithTextCode(textCodeInvalidID)
	}
	return parsed.String(), nil
}
