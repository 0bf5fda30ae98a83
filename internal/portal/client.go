package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"quoteportal/pkg"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client talks to the portal backend. Requests are credentialed: the session
// cookie set by Login is kept in the jar and sent on every later call.
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
	log     *zap.Logger
}

// NewClient parses baseURL (a trailing slash is added so relative routes
// resolve under it). A nil httpClient gets a jar and a default timeout; a
// client without a jar gets one.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q", ErrInvalidInput, baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c := *httpClient
		c.Jar = jar
		httpClient = &c
	}

	return &Client{BaseURL: u, HTTP: httpClient, log: zap.L().Named("portal.client")}, nil
}

// envelope is the part of every backend body the client checks.
type envelope struct {
	Success *bool  `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends body as JSON (when non-nil) and decodes the response into out
// (when non-nil) after the envelope check.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	return c.send(ctx, method, path, "application/json", reader, out)
}

func (c *Client) send(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	u := c.BaseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	op := method + " " + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if cid := pkg.CorrelationID(ctx); cid != "" {
		req.Header.Set(pkg.CorrelationHeader, cid)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("op", op), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || (decodeErr == nil && env.Success != nil && !*env.Success) {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: env.Code, Message: env.Message}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		c.log.Info("request rejected",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("code", apiErr.Code))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s: %w", op, decodeErr)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", op, err)
	}
	return nil
}
