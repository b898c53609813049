package client

import "fmt"

// ErrorKind classifies an APIError so callers can branch on the broad
// failure category instead of parsing messages.
type ErrorKind string

const (
	// KindValidation covers rejected input: a 4xx response carrying a
	// server-provided message, or a client-side validation failure.
	KindValidation ErrorKind = "validation"
	// KindNetwork covers transport failures where no response arrived.
	KindNetwork ErrorKind = "network"
	// KindUnknown covers everything else (5xx, malformed responses).
	KindUnknown ErrorKind = "unknown"
)

// APIError is the single error type returned by every Client method.
type APIError struct {
	Kind    ErrorKind
	Message string
	Status  int // HTTP status, 0 when no response was received
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func validationError(msg string) *APIError {
	return &APIError{Kind: KindValidation, Message: msg}
}

func networkError(err error) *APIError {
	return &APIError{Kind: KindNetwork, Message: err.Error()}
}
