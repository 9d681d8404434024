// Package session keeps per-visitor view state on the server: the auth token
// and the state of the cottage screens.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/NotOriginal333/hotel-lab4/internal/web/models"
)

// ErrNotFound is returned by a Store when the session is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Data is the persisted part of a session.
type Data struct {
	Token    string               `json:"token,omitempty"`
	Cottages *models.CottageList  `json:"cottages,omitempty"`
	Booking  *models.BookingState `json:"booking,omitempty"`
}

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks . Store

// Store persists session data by id.
type Store interface {
	Load(ctx context.Context, id string) (*Data, error)
	Save(ctx context.Context, id string, data *Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	// Touch extends the expiry of an existing session without rewriting it.
	Touch(ctx context.Context, id string, ttl time.Duration) error
}

type Session struct {
	ID    string
	data  Data
	isNew     bool
	dirty     bool
	destroyed bool
}

func New(id string) *Session {
	return &Session{ID: id, isNew: true}
}

func newLoaded(id string, data *Data) *Session {
	return &Session{ID: id, data: *data}
}

func (s *Session) Token() string {
	return s.data.Token
}

func (s *Session) Authenticated() bool {
	return s.data.Token != ""
}

func (s *Session) SetToken(token string) {
	s.data.Token = token
	s.dirty = true
}

// Cottages returns the cottage list state, or nil before the list was opened.
func (s *Session) Cottages() *models.CottageList {
	return s.data.Cottages
}

func (s *Session) SetCottages(l *models.CottageList) {
	s.data.Cottages = l
	s.dirty = true
}

// Booking returns the booking state for cottageID, or nil when the visitor's
// current detail screen is for another cottage.
func (s *Session) Booking(cottageID int64) *models.BookingState {
	if s.data.Booking == nil || s.data.Booking.Cottage.ID != cottageID {
		return nil
	}
	return s.data.Booking
}

func (s *Session) SetBooking(b *models.BookingState) {
	s.data.Booking = b
	s.dirty = true
}

// IsNew reports whether the session was created by this request.
func (s *Session) IsNew() bool {
	return s.isNew
}

// Modified reports whether the session needs to be written back.
func (s *Session) Modified() bool {
	return s.dirty
}

// Destroy drops all session data. The stored entry is removed once the
// request completes.
func (s *Session) Destroy() {
	s.data = Data{}
	s.destroyed = true
}

func (s *Session) Destroyed() bool {
	return s.destroyed
}
