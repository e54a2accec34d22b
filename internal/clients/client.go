package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config holds the base URLs of the three upstream services.
type Config struct {
	UsersBaseURL    string
	CanchasBaseURL  string
	ReservasBaseURL string
	Timeout         time.Duration
}

// apiClient is the shared HTTP plumbing of every upstream client: base URL
// handling, bearer attachment, JSON codec and error mapping. No retries or
// backoff exist anywhere; a failed round-trip surfaces to the page.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *apiClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType, token string, out interface{}) error {
	target := a.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("building request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseServiceError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
	}
	return nil
}

func (a *apiClient) getJSON(ctx context.Context, path string, query url.Values, token string, out interface{}) error {
	return a.do(ctx, http.MethodGet, path, query, nil, "", token, out)
}

func (a *apiClient) postJSON(ctx context.Context, path string, payload interface{}, token string, out interface{}) error {
	body, err := encodeJSON(payload)
	if err != nil {
		return err
	}
	return a.do(ctx, http.MethodPost, path, nil, body, "application/json", token, out)
}

func (a *apiClient) putJSON(ctx context.Context, path string, payload interface{}, token string, out interface{}) error {
	body, err := encodeJSON(payload)
	if err != nil {
		return err
	}
	return a.do(ctx, http.MethodPut, path, nil, body, "application/json", token, out)
}

func (a *apiClient) delete(ctx context.Context, path string, token string) error {
	return a.do(ctx, http.MethodDelete, path, nil, nil, "", token, nil)
}

// postMultipart uploads a single file under the given form field name.
func (a *apiClient) postMultipart(ctx context.Context, path, fieldName, filename string, file io.Reader, token string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return fmt.Errorf("preparing upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("preparing upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("preparing upload: %w", err)
	}
	return a.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType(), token, out)
}

func encodeJSON(payload interface{}) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request payload: %w", err)
	}
	return bytes.NewReader(data), nil
}
