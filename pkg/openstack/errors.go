package openstack

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/younsl/cloudctl/pkg/utils"
)

var (
	// ErrNotFound matches API errors with status 404
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden matches API errors with status 403
	ErrForbidden = errors.New("forbidden")
)

// APIError represents a non-2xx response from a service
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.RequestID != "" {
		return fmt.Sprintf("%s (HTTP %d) (Request-ID: %s)", msg, e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("%s (HTTP %d)", msg, e.StatusCode)
}

// Is lets errors.Is match the status sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    utils.ExtractErrorMessage(resp.Body()),
		RequestID:  resp.Header().Get("X-Openstack-Request-Id"),
	}
	if resp.Request != nil {
		apiErr.Method = resp.Request.Method
		apiErr.URL = resp.Request.URL
	}
	return apiErr
}
