package models

// User-visible outcome messages.
const (
	MsgRegisterFailed     = "Registration failed. Please try again."
	MsgLoginFailed        = "Login failed. Please check your credentials."
	MsgAvailabilityFailed = "Error checking availability"
	MsgBookingConfirmed   = "Booking confirmed"
	MsgBookingFailed      = "Failed to book the cottage"
	MsgCheckFirst         = "Check availability before booking"
	MsgLoginToBook        = "Please log in to book a cottage"
	MsgInvalidDates       = "Please choose valid check-in and check-out dates"
	MsgCottagesFailed     = "Error fetching cottages"
	MsgCottageFailed      = "Failed to fetch cottage details"
)
