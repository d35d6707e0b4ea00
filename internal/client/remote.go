package client

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

	"portfolio_api/internal/model"
)

// ErrUnsupported is returned by a RemoteSource for operations its entity has
// no route for.
var ErrUnsupported = errors.New("operation not supported")

const maxErrorBody = 1 << 20

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// transport performs JSON calls against the API base URL.
type transport struct {
	http    *http.Client
	baseURL string
	tokens  *TokenStore
}

func (t *transport) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := t.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a 400 carrying field errors into a *model.ValidationError
// and anything else into an *APIError.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Message string             `json:"message"`
		Errors  []model.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		body.Message = strings.TrimSpace(string(raw))
	}

	if resp.StatusCode == http.StatusBadRequest && len(body.Errors) > 0 {
		return &model.ValidationError{Fields: body.Errors}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Message}
}

// RemoteSource reads and writes one entity kind through the API.
type RemoteSource[T any] struct {
	t          *transport
	listPath   string
	createPath string
	deletePath string

	// encode shapes the create body. Nil sends the item itself.
	encode func(T) any

	// echo makes Create return its input, for routes that answer with an
	// acknowledgement instead of the stored record.
	echo bool
}

func (s *RemoteSource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.t.do(ctx, http.MethodGet, s.listPath, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *RemoteSource[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	var body any = item
	if s.encode != nil {
		body = s.encode(item)
	}

	if s.echo {
		if err := s.t.do(ctx, http.MethodPost, s.createPath, body, nil); err != nil {
			return zero, err
		}
		return item, nil
	}

	var created T
	if err := s.t.do(ctx, http.MethodPost, s.createPath, body, &created); err != nil {
		return zero, err
	}
	return created, nil
}

func (s *RemoteSource[T]) Delete(ctx context.Context, id string) error {
	if s.deletePath == "" {
		return ErrUnsupported
	}
	return s.t.do(ctx, http.MethodDelete, s.deletePath+"/"+url.PathEscape(id), nil, nil)
}
