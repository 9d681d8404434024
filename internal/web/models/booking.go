package models

import "github.com/NotOriginal333/hotel-lab4/internal/resortapi"

// BookingState is the state of one cottage detail screen: the cottage as
// fetched on open, and the outcome of the last availability check.
type BookingState struct {
	Cottage  resortapi.Cottage `json:"cottage"`
	CheckIn  string            `json:"check_in,omitempty"`
	CheckOut string            `json:"check_out,omitempty"`
	// Checked is set once a check has completed, successfully or not.
	Checked   bool   `json:"checked"`
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
	// Notice is the outcome of the last booking attempt.
	Notice string `json:"notice,omitempty"`
}

func NewBookingState(cottage resortapi.Cottage) *BookingState {
	return &BookingState{Cottage: cottage}
}

// CanBook reports whether the last availability check was positive.
func (b *BookingState) CanBook() bool {
	return b.Checked && b.Available
}

func (b *BookingState) RecordAvailability(checkIn, checkOut string, result resortapi.Availability) {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.Checked = true
	b.Available = result.Available
	b.Message = result.Message
	b.Notice = ""
}

func (b *BookingState) RecordCheckFailure(checkIn, checkOut, message string) {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.Checked = true
	b.Available = false
	b.Message = message
	b.Notice = ""
}

// RecordBookingAttempt stores the outcome and drops the availability result,
// so the next booking needs a new check.
func (b *BookingState) RecordBookingAttempt(notice string) {
	b.Notice = notice
	b.Checked = false
	b.Available = false
	b.Message = ""
}

// Request builds the booking payload from the last checked date range.
func (b *BookingState) Request() resortapi.BookingRequest {
	return resortapi.BookingRequest{
		CottageID: b.Cottage.ID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
	}
}
