package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is any non-2xx upstream response. Message carries the body's
// "message" field when the upstream provided one.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// IsUnauthorized reports whether err is an upstream 401, which must discard
// the stored token and redirect the caller to login.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// ExtractErrorMessage returns the upstream-provided message when err carries
// one, otherwise the caller-supplied fallback.
func ExtractErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// Body is the request payload, tagged by the caller instead of structurally
// inspected by the transport.
type Body interface {
	write(req *http.Request) error
}

type JSONBody struct {
	Payload interface{}
}

func (b JSONBody) write(req *http.Request) error {
	raw, err := json.Marshal(b.Payload)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))
	req.ContentLength = int64(len(raw))
	req.Header.Set("Content-Type", "application/json")
	return nil
}

type MultipartFile struct {
	Field    string
	Filename string
	Content  io.Reader
}

type MultipartBody struct {
	Fields map[string]string
	Files  []MultipartFile
}

func (b MultipartBody) write(req *http.Request) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range b.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return err
		}
	}
	for _, file := range b.Files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}
	req.Body = io.NopCloser(&buf)
	req.ContentLength = int64(buf.Len())
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return nil
}

// TokenFunc supplies the bearer token for the current request scope. An
// empty return means no Authorization header is attached.
type TokenFunc func(ctx context.Context) string

// APIClient wraps the upstream JSON API. The public client has a nil Token;
// the admin client injects Authorization: Bearer <token> on every request.
type APIClient struct {
	BaseURL string
	Token   TokenFunc
	HTTP    *http.Client
}

func NewPublicClient(baseURL string) *APIClient {
	return &APIClient{BaseURL: baseURL}
}

func NewAdminClient(baseURL string, token TokenFunc) *APIClient {
	return &APIClient{BaseURL: baseURL, Token: token}
}

func (c *APIClient) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *APIClient) Post(ctx context.Context, path string, body Body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *APIClient) Put(ctx context.Context, path string, body Body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *APIClient) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *APIClient) do(ctx context.Context, method, path string, params url.Values, body Body, out interface{}) error {
	u := strings.TrimRight(c.BaseURL, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	if body != nil {
		if err := body.write(req); err != nil {
			return err
		}
	}
	if c.Token != nil {
		if token := c.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    messageFromBody(raw),
			Body:       raw,
		}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func messageFromBody(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
