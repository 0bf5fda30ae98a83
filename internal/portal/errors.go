package portal

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidInput is returned before any request is sent.
	ErrInvalidInput  = errors.New("invalid input")
	ErrAdminRequired = errors.New("admin session required")
	ErrUnknownRecord = errors.New("record not loaded")
)

// NetworkError is a transport failure: the request never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is an application failure reported by the backend, either a
// non-2xx status or a body with success:false.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsConflict reports whether the backend refused a status write because the
// record changed or the move is not allowed.
func (e *APIError) IsConflict() bool { return e.StatusCode == http.StatusConflict }

// Message extracts the text the screens show for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Something went wrong. Check your connection and try again."
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
