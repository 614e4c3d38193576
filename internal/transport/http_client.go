package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"propmart/config"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// envelope is the backend's uniform response shape. Payloads are always
// unwrapped from Data.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// HTTPClient is the net/http implementation of the Client contract.
type HTTPClient struct {
	base   *url.URL
	client *http.Client
	logger *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client from the marketplace API section of the
// configuration.
func NewHTTPClient(cfg *config.Config, logger *slog.Logger) (*HTTPClient, error) {
	base, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse base url %q", cfg.API.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", cfg.API.BaseURL)
	}

	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		base:   base,
		client: &http.Client{Timeout: timeout},
		logger: logger,
		token:  cfg.API.Token,
	}, nil
}

// SetToken replaces the bearer token attached to subsequent requests.
// An empty token clears the Authorization header.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Do issues the request and decodes the envelope data payload into out.
func (c *HTTPClient) Do(ctx context.Context, req Request, out any) error {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &Error{Kind: KindNetwork, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, cause: err}
	}

	var env envelope
	if len(raw) > 0 {
		// An unparseable body is treated as a missing message so the
		// slice's fallback string applies.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (len(raw) > 0 && !env.Success) {
		apiErr := &Error{
			Kind:    kindFromStatus(resp.StatusCode),
			Message: env.Message,
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
		}

		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", apiErr.Kind.String()),
		)

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindUnknown, cause: errors.Wrap(err, "decode payload")}
		}
	}

	return nil
}

func (c *HTTPClient) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := *c.base
	target.Path = strings.TrimRight(target.Path, "/") + req.Path
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case req.Form != nil:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		for field, values := range req.Form.Fields {
			for _, value := range values {
				if err := writer.WriteField(field, value); err != nil {
					return nil, errors.Wrap(err, "write form field")
				}
			}
		}
		for _, file := range req.Form.Files {
			part, err := writer.CreateFormFile(file.Field, file.Name)
			if err != nil {
				return nil, errors.Wrap(err, "create form file")
			}
			if _, err := part.Write(file.Content); err != nil {
				return nil, errors.Wrap(err, "write form file")
			}
		}
		if err := writer.Close(); err != nil {
			return nil, errors.Wrap(err, "close multipart writer")
		}
		body = buf
		contentType = writer.FormDataContentType()

	case req.Body != nil:
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}
