package models

import "github.com/NotOriginal333/hotel-lab4/internal/resortapi"

// Layout carries what every page needs for the navigation bar.
type Layout struct {
	Title         string
	Authenticated bool
}

type RegisterPage struct {
	Layout
	Form  RegisterForm
	Error string
}

type LoginPage struct {
	Layout
	Form  LoginForm
	Error string
}

type CottageListPage struct {
	Layout
	Cottages []resortapi.Cottage
	HasMore  bool
	Error    string
}

type CottageDetailPage struct {
	Layout
	Cottage  *resortapi.Cottage
	Booking  *BookingState
	CanBook  bool
	Error    string
	CheckIn  string
	CheckOut string
}
