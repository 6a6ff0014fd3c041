package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aryankumar/blox/internal/util"
)

// Error represents a non-2xx response from a platform API
type Error struct {
	// StatusCode is the HTTP response status code
	StatusCode int

	// Errors is the platform's error list, when the body carried one
	Errors []PlatformError

	// RetryAfter is the Retry-After header in seconds, if any
	RetryAfter int
}

// PlatformError is one entry of the {"errors": [...]} response body
type PlatformError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "api: HTTP %d", e.StatusCode)
	for _, pe := range e.Errors {
		if pe.Message != "" {
			fmt.Fprintf(&sb, ": %s (code %d)", pe.Message, pe.Code)
		}
	}
	return sb.String()
}

// Unwrap maps the status code to the matching sentinel error
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return util.ErrUnauthorized
	case http.StatusNotFound:
		return util.ErrNotFound
	case http.StatusTooManyRequests:
		return util.ErrRateLimited
	case http.StatusBadRequest:
		// Several services answer 400 for ids that do not exist
		for _, pe := range e.Errors {
			if strings.Contains(strings.ToLower(pe.Message), "invalid") ||
				strings.Contains(strings.ToLower(pe.Message), "not found") ||
				strings.Contains(strings.ToLower(pe.Message), "does not exist") {
				return util.ErrNotFound
			}
		}
	}
	return nil
}

// StatusCode returns the HTTP status of an *Error anywhere in err's chain, or 0
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// parseError builds an *Error from a failed response
func parseError(response *http.Response, body []byte) error {
	apiErr := &Error{StatusCode: response.StatusCode}

	var payload struct {
		Errors []PlatformError `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Errors = payload.Errors
	}

	if seconds, err := strconv.Atoi(response.Header.Get("Retry-After")); err == nil && seconds > 0 {
		apiErr.RetryAfter = seconds
	}

	if apiErr.StatusCode == http.StatusTooManyRequests {
		return util.NewRetryableError(apiErr, apiErr.RetryAfter)
	}

	return apiErr
}

// notFound is returned when a batch endpoint silently omits the requested id
func notFound(what string) error {
	return &Error{
		StatusCode: http.StatusNotFound,
		Errors:     []PlatformError{{Message: what + " not found"}},
	}
}
