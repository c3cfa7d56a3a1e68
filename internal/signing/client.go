// Package signing talks to the remote message signing service.
package signing

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"

	"github.com/miles-w-3/signpad/internal/account"
)

// SignMessageQuery asks the service to sign a message with the node's key
const SignMessageQuery = `query SignMessage($message: String!, $auth: authType!) {
  signMessage(message: $message, auth: $auth)
}`

// RequestIDHeader carries a unique id for every signing request
const RequestIDHeader = "X-Request-Id"

// Signer signs a message on behalf of the credential holder. Errors are
// always *RequestFailure.
type Signer interface {
	Sign(ctx context.Context, auth account.Credential, message string) (string, error)
}

// ClientConfig holds the configuration for the GraphQL signing client
type ClientConfig struct {
	Endpoint string
	Timeout  time.Duration
	Headers  http.Header
	Logger   *slog.Logger

	// HTTPClient overrides the default client built from Timeout
	HTTPClient *http.Client
}

// Client is a Signer backed by a GraphQL endpoint
type Client struct {
	gql     *graphql.Client
	headers http.Header
	logger  *slog.Logger
}

type signMessageResponse struct {
	SignMessage string `json:"signMessage"`
}

// NewClient creates a new GraphQL signing client
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := &http.Client{Timeout: config.Timeout}
	if config.HTTPClient != nil {
		copied := *config.HTTPClient
		httpClient = &copied
	}
	httpClient.Transport = newStatusTransport(httpClient.Transport)

	gql := graphql.NewClient(config.Endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		logger.Debug("graphql transport", "detail", s)
	}

	return &Client{
		gql:     gql,
		headers: config.Headers.Clone(),
		logger:  logger,
	}, nil
}

// Sign requests a signature over message. The message is sent exactly as
// given.
func (c *Client) Sign(ctx context.Context, auth account.Credential, message string) (string, error) {
	requestID := uuid.NewString()

	req := graphql.NewRequest(SignMessageQuery)
	req.Var("message", message)
	req.Var("auth", auth)
	for name, values := range c.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set(RequestIDHeader, requestID)

	c.logger.Debug("Requesting signature", "request_id", requestID, "message_len", len(message))

	var resp signMessageResponse
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		c.logger.Warn("Signing request failed", "request_id", requestID, "error", err.Error())
		return "", NewRequestFailure(err)
	}

	if resp.SignMessage == "" {
		c.logger.Warn("Signing request returned no signature", "request_id", requestID)
		return "", NewRequestFailure(ErrEmptySignature)
	}

	c.logger.Info("Message signed", "request_id", requestID)
	return resp.SignMessage, nil
}
