package signing

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySignature is returned when the service answers without a signature
var ErrEmptySignature = errors.New("signing service returned an empty signature")

// graphqlErrPrefix is prepended by the GraphQL transport to server errors
const graphqlErrPrefix = "graphql: "

// RequestFailure is any failure of a single signing request: network,
// authorization or server-side validation. Callers are not expected to
// distinguish between causes.
type RequestFailure struct {
	Err error
}

// NewRequestFailure wraps err as a RequestFailure
func NewRequestFailure(err error) *RequestFailure {
	return &RequestFailure{Err: err}
}

func (f *RequestFailure) Error() string {
	return fmt.Sprintf("sign message: %v", f.Err)
}

func (f *RequestFailure) Unwrap() error {
	return f.Err
}

// serviceError is the structured error body some signing backends return
// inside the GraphQL error message
type serviceError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// ErrorContent converts a signing error into text fit for a notification.
func ErrorContent(err error) string {
	if err == nil {
		return ""
	}

	var failure *RequestFailure
	if errors.As(err, &failure) && failure.Err != nil {
		err = failure.Err
	}

	var status *StatusError
	if errors.As(err, &status) {
		return status.Error()
	}

	msg := strings.TrimPrefix(err.Error(), graphqlErrPrefix)

	var structured serviceError
	if json.Unmarshal([]byte(msg), &structured) == nil && structured.Error != "" {
		if structured.Details == "" {
			return structured.Error
		}
		return fmt.Sprintf("%s [%s]", structured.Error, structured.Details)
	}

	return msg
}
