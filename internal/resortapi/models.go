package resortapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type Amenity struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	AdditionalCapacity int    `json:"additional_capacity"`
}

type Cottage struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	BaseCapacity  int       `json:"base_capacity"`
	PricePerNight Price     `json:"price_per_night"`
	TotalCapacity int       `json:"total_capacity"`
	Amenities     []Amenity `json:"amenities,omitempty"`
}

// Price is a decimal amount kept in the API's textual form. The API may send
// it either as a JSON string ("120.00") or as a number.
type Price string

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid price %s: %w", data, err)
	}
	*p = Price(n.String())
	return nil
}

func (p Price) String() string {
	return string(p)
}

type AvailabilityRequest struct {
	Cottage  int64  `json:"cottage"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type Availability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type BookingRequest struct {
	CottageID int64  `json:"cottage_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}
