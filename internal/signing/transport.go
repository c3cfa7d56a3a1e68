package signing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/miles-w-3/signpad/internal/util"
)

// maxErrorBody bounds how much of a failed response is read for the error text
const maxErrorBody = 4 << 10

// maxErrorText bounds the body excerpt carried in a StatusError
const maxErrorText = 200

// StatusError is a non-2xx HTTP response that carried no GraphQL errors,
// typically from a proxy or auth layer in front of the service.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server returned %s", e.Status)
	}
	return fmt.Sprintf("server returned %s: %s", e.Status, e.Body)
}

// statusTransport rejects non-2xx responses unless their body is a GraphQL
// error document, which is left for the GraphQL client to decode.
type statusTransport struct {
	next http.RoundTripper
}

func newStatusTransport(next http.RoundTripper) *statusTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &statusTransport{next: next}
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", resp.Status, err)
	}

	if hasGraphQLErrors(body) {
		resp.Body = io.NopCloser(bytes.NewReader(body))
		resp.ContentLength = int64(len(body))
		return resp, nil
	}

	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return nil, &StatusError{
		StatusCode: resp.StatusCode,
		Status:     status,
		Body:       util.Truncate(strings.TrimSpace(string(body)), maxErrorText),
	}
}

func hasGraphQLErrors(body []byte) bool {
	var doc struct {
		Errors []json.RawMessage `json:"errors"`
	}
	return json.Unmarshal(body, &doc) == nil && len(doc.Errors) > 0
}
