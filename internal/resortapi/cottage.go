package resortapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

const pathCottages = "/api/resort/cottages/"

// ListCottages fetches one page of cottages.
func (c *Client) ListCottages(ctx context.Context, page, pageSize int) ([]Cottage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	resp, err := c.get(ctx, pathCottages+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}
	return decodeCottageList(resp.Body)
}

// GetCottage fetches a single cottage by id.
func (c *Client) GetCottage(ctx context.Context, id int64) (*Cottage, error) {
	resp, err := c.get(ctx, pathCottages+strconv.FormatInt(id, 10)+"/")
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, newAPIError(resp)
	}

	var cottage Cottage
	if err := resp.DecodeJSON(&cottage); err != nil {
		return nil, err
	}
	return &cottage, nil
}

// decodeCottageList accepts a bare JSON array, or the paginated
// {"results": [...]} envelope the API produces when pagination is enabled.
func decodeCottageList(body []byte) ([]Cottage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedFormat
	}

	switch trimmed[0] {
	case '[':
		var cottages []Cottage
		if err := json.Unmarshal(trimmed, &cottages); err != nil {
			return nil, fmt.Errorf("failed to decode cottage list: %w", err)
		}
		return cottages, nil
	case '{':
		var envelope struct {
			Results *[]Cottage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode cottage page: %w", err)
		}
		if envelope.Results == nil {
			return nil, ErrUnexpectedFormat
		}
		return *envelope.Results, nil
	default:
		return nil, ErrUnexpectedFormat
	}
}
