package controller

import (
	"errors"
	"net/http"

	"github.com/NotOriginal333/hotel-lab4/internal/resortapi"
)

// statusFor maps a resort API failure to the status of the rendered page.
// Client errors from the API are passed through, everything else is a bad
// gateway.
func statusFor(err error) int {
	var apiErr *resortapi.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
