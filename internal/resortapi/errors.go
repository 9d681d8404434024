package resortapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedFormat is returned when a response decodes but does not have the expected shape.
var ErrUnexpectedFormat = errors.New("unexpected response format")

var ErrResponseTooLarge = errors.New("response body too large")

// APIError is a non-2xx answer from the resort API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resort api: %d: %s", e.StatusCode, e.Message)
}

func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

func newAPIError(resp *Response) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(resp),
		Body:       resp.Body,
	}
}

// errorMessage extracts the most useful message out of an error body. The API
// answers with {"detail": ...}, {"non_field_errors": [...]} or per-field lists.
func errorMessage(resp *Response) string {
	var errResp map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &errResp); err != nil || len(errResp) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	for _, key := range []string{"detail", "message", "error", "non_field_errors"} {
		if msg := firstString(errResp[key]); msg != "" {
			return msg
		}
	}
	for field, raw := range errResp {
		if msg := firstString(raw); msg != "" {
			return field + ": " + msg
		}
	}
	return http.StatusText(resp.StatusCode)
}

func firstString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
