package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "lcsubmit/pkg/errors"

	"github.com/google/uuid"
)

// IdempotencyHeader carries a per-submission key so the judge can drop a
// repeated POST.
const IdempotencyHeader = "Idempotency-Key"

// ResponseInfo is a judge response. IdempotencyKey is set for PostJSON.
type ResponseInfo struct {
	StatusCode     int
	Headers        http.Header
	Body           []byte
	Duration       time.Duration
	IdempotencyKey string
}

// Client talks to the judge API as the signed-in user.
type Client struct {
	baseURL       string
	tokenProvider func() string
	newKey        func() string
	raw           *http.Client
}

func New(baseURL string, timeout time.Duration, tokenProvider func() string) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		tokenProvider: tokenProvider,
		newKey:        uuid.NewString,
		raw:           &http.Client{Timeout: timeout},
	}
}

// PostJSON encodes payload and posts it under a fresh idempotency key.
func (c *Client) PostJSON(ctx context.Context, path string, payload interface{}) (ResponseInfo, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ResponseInfo{}, fmt.Errorf("marshal request body failed: %w", err)
	}
	key := c.newKey()
	resp, err := c.Do(ctx, http.MethodPost, path, map[string]string{IdempotencyHeader: key}, body)
	resp.IdempotencyKey = key
	return resp, err
}

func (c *Client) Do(ctx context.Context, method, path string, headers map[string]string, body []byte) (ResponseInfo, error) {
	var info ResponseInfo

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return info, fmt.Errorf("build request failed: %w", err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "text/plain, application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	if c.tokenProvider != nil {
		if token := c.tokenProvider(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.raw.Do(req)
	info.Duration = time.Since(start)
	if err != nil {
		return info, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	info.StatusCode = resp.StatusCode
	info.Headers = resp.Header
	if info.Body, err = io.ReadAll(resp.Body); err != nil {
		return info, fmt.Errorf("read response body failed: %w", err)
	}
	return info, nil
}

// CheckStatus maps a non-2xx judge response to an error. resource names what
// the request addressed, e.g. "problem 1".
func CheckStatus(resp ResponseInfo, resource string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var e *pkgerrors.Error
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		e = pkgerrors.New(pkgerrors.NotSignedIn)
	case http.StatusNotFound:
		e = pkgerrors.NotFoundError(resource)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		e = pkgerrors.New(pkgerrors.Timeout)
	default:
		e = pkgerrors.Newf(pkgerrors.JudgeRejected, "judge returned HTTP %d", resp.StatusCode)
	}
	return e.WithDetail("status", resp.StatusCode).
		WithDetail("body", strings.TrimSpace(string(resp.Body)))
}
