// Package travixa implements the assistant.Client contract against the
// Travixa concierge HTTP service.
package travixa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/travixa/concierge-core/core/assistant"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/codes"
)

const chatPath = "/chat"

var _ assistant.Client = (*Client)(nil)

// Client talks to the concierge service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithBaseURL overrides the service base URL (scheme://host[:port]).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client. The default client
// carries an otelhttp transport.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a concierge service client. The base URL is taken
// from options or, failing that, the TRAVIXA_API_URL environment
// variable.
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
				return "concierge " + request.Method + " " + request.URL.Path
			}),
		)},
	}
	for _, opt := range opts {
		opt(client)
	}

	if client.baseURL == "" {
		baseURL, ok := os.LookupEnv("TRAVIXA_API_URL")
		if !ok {
			return nil, fmt.Errorf("concierge service url not found")
		}
		client.baseURL = strings.TrimRight(baseURL, "/")
	}

	return client, nil
}

// SendTurn submits one turn and decodes the reply plus artifacts.
func (c *Client) SendTurn(ctx context.Context, request assistant.TurnRequest) (*assistant.TurnResponse, error) {
	ctx, span := tracer.Start(ctx, "send concierge turn")
	defer span.End()

	requestBodyBytes, err := json.Marshal(toTurnRequestBody(request))
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordedErr := fmt.Errorf("error sending request: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnContext(ctx, "failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		recordedErr := fmt.Errorf("concierge service returned %s", resp.Status)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}

	var responseBody turnResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&responseBody); err != nil {
		recordedErr := fmt.Errorf("error unmarshalling JSON: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}

	return toTurnResponse(responseBody), nil
}
