package client

import "github.com/sharespace/sharespace-service/internal/core/domain"

// Aliases for the wire types, so callers of this package never need to
// reach into internal packages.
type (
	Room                   = domain.Room
	RoomUpdate             = domain.RoomUpdate
	AvailabilityRequest    = domain.AvailabilityRequest
	Roommate               = domain.Roommate
	BookingRequest         = domain.BookingRequest
	LoginRequest           = domain.LoginRequest
	OwnerLoginRequest      = domain.OwnerLoginRequest
	UpdateDetails          = domain.UpdateDetails
	VacateRequest          = domain.VacateRequest
	Grievance              = domain.Grievance
	Payment                = domain.Payment
	PaymentCallbackRequest = domain.PaymentCallbackRequest
	MailResponse           = domain.MailResponse
	ReferralDetail         = domain.ReferralDetail
	RentStatus             = domain.RentStatus
	Date                   = domain.Date
	PageRequest            = domain.PageRequest
)
