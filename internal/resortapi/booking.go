package resortapi

import (
	"context"
)

const (
	pathCheckAvailability = "/api/resort/check-availability/"
	pathBooking           = "/api/resort/booking/"
)

// CheckAvailability asks whether the cottage is free for the date range.
func (c *Client) CheckAvailability(ctx context.Context, req AvailabilityRequest, csrfToken string) (*Availability, error) {
	resp, err := c.post(ctx, pathCheckAvailability, req, csrfHeaders(csrfToken))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}

	var out Availability
	if err := resp.DecodeJSON(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking books the cottage on behalf of the token's owner. Only success
// or failure is reported; the created booking is not decoded.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest, authToken, csrfToken string) error {
	headers := csrfHeaders(csrfToken)
	headers[HeaderAuthorization] = "Token " + authToken

	resp, err := c.post(ctx, pathBooking, req, headers)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return newAPIError(resp)
	}
	return nil
}
