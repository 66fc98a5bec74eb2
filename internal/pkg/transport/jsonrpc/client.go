// Package jsonrpc is a JSON-RPC 2.0 client over HTTP. Requests carry uuid
// ids and go through a retrying HTTP client; error objects returned by the
// server surface as *Error.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	transporthttp "github.com/gabapcia/palletsapi/internal/pkg/transport/http"
)

// ErrProviderReturnedError matches every *Error.
var ErrProviderReturnedError = errors.New("provider error")

// Error is a JSON-RPC error object.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Is reports ErrProviderReturnedError as a match.
func (e *Error) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// ErrorCode returns the JSON-RPC error code.
func (e *Error) ErrorCode() int {
	return e.Code
}

// ErrorData returns the error data, unquoted when it is a JSON string.
func (e *Error) ErrorData() any {
	if len(e.Data) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(e.Data, &s); err == nil {
		return s
	}
	return string(e.Data)
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

func (r response) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Client sends JSON-RPC requests.
type Client interface {
	// Fetch calls method with params and returns the raw result.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}
	return data.Result, nil
}

// NewClient returns a Client posting to providerEndpoint. opts configure the
// underlying HTTP client.
func NewClient(providerEndpoint string, opts ...transporthttp.Option) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       transporthttp.NewClient(opts...),
	}
}
