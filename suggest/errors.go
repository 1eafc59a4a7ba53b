package suggest

import (
	"context"
	"errors"
	"fmt"
)

// ExcerptLength is how many characters of an unexpected body are kept for
// display.
const ExcerptLength = 400

var (
	// ErrNotConfigured is returned when a client has no endpoint.
	ErrNotConfigured = errors.New("suggestion service is not configured")
	// ErrHTMLResponse is returned when a service answers with an HTML page.
	ErrHTMLResponse = errors.New("service returned HTML instead of JSON")
	// ErrUnexpectedPayload is returned when a body is not the expected JSON.
	ErrUnexpectedPayload = errors.New("service returned an unexpected payload")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Status  string
	Excerpt string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("suggestion service error: %s", e.Status)
}

// PayloadError describes a 2xx body that could not be used. Kind is
// ErrHTMLResponse or ErrUnexpectedPayload.
type PayloadError struct {
	Kind    error
	Excerpt string
	Err     error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

// Unwrap exposes the kind sentinel and any decode error.
func (e *PayloadError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Describe turns a client error into the message shown in a suggestion
// panel. It returns "" for a nil error.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *StatusError
	var payloadErr *PayloadError
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "The suggestion service is not configured. Set the endpoint in the [suggest] section of the config file."
	case errors.As(err, &statusErr):
		msg := fmt.Sprintf("The service returned an error (%s).", statusErr.Status)
		if statusErr.Excerpt != "" {
			msg += "\n\n" + statusErr.Excerpt
		}
		return msg
	case errors.As(err, &payloadErr) && errors.Is(err, ErrHTMLResponse):
		return "The service did not return JSON. The tunnel may have expired, the request may have been blocked, or the server failed:\n\n" + payloadErr.Excerpt
	case errors.As(err, &payloadErr):
		msg := "The service returned a response that could not be read."
		if payloadErr.Excerpt != "" {
			msg += "\n\n" + payloadErr.Excerpt
		}
		return msg
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. The service may be offline."
	case errors.Is(err, context.Canceled):
		return "The request was canceled."
	default:
		return "Could not reach the service: " + err.Error()
	}
}
