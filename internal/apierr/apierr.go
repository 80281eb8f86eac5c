package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a 401 from the backend. The session layer reacts to
// it by logging out instead of surfacing a message.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a backend rejection: the HTTP status and the message
// extracted from the response body. Message is empty when the body carried
// none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("backend error %d: %s", e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// FromResponse builds an APIError from a non-2xx response body. Backends in
// the wild answer with either {"message": ...} or {"error": ...}.
func FromResponse(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}

// UserMessage extracts a message fit for a toast: the backend's own message
// when one was present, the fallback otherwise.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Friendly is UserMessage with a friendlier wording for one specific status:
// the backend message still wins, but a bare rejection with the given status
// maps to friendly instead of the generic fallback.
func Friendly(err error, status int, friendly, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.StatusCode == status {
			return friendly
		}
	}
	return fallback
}
