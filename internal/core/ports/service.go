package ports

import (
	"context"
	"io"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

type RoomService interface {
	GetAllRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, roomID int) (*domain.Room, error)
	CheckAvailability(ctx context.Context, req domain.AvailabilityRequest) ([]domain.Room, error)
	BookRoom(ctx context.Context, roomID int, req domain.BookingRequest) (*domain.Roommate, error)
	AddRoom(ctx context.Context, room *domain.Room) (string, error)
	EditRoom(ctx context.Context, roomID int, update domain.RoomUpdate) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID int) (string, error)
}

type RoommateService interface {
	// Login verifies credentials and returns the profile plus a session token.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Roommate, string, error)
	GetAllRoommates(ctx context.Context) ([]domain.Roommate, error)
	UpdateDetails(ctx context.Context, roommateID int, update domain.UpdateDetails) (*domain.Roommate, error)
	Vacate(ctx context.Context, username string) error
	SendVacateRequest(ctx context.Context, roommateID int, request domain.VacateRequest) (string, error)
	PendingVacateRequests(ctx context.Context) ([]domain.VacateRequest, error)
	MarkVacateRead(ctx context.Context, vacateRequestID int) error
	SortRoommates(ctx context.Context, req domain.PageRequest, rentStatus *domain.RentStatus) (domain.Page[domain.Roommate], error)
}

type PaymentService interface {
	// PayRent creates a gateway order for the roommate's current rent and
	// returns the descriptor consumed by the checkout widget.
	PayRent(ctx context.Context, username string) (*domain.PaymentCallbackRequest, error)
	// ConfirmPayment verifies the widget callback against the gateway and
	// settles the payment.
	ConfirmPayment(ctx context.Context, req domain.PaymentCallbackRequest) (string, error)
	GetAllPayments(ctx context.Context) ([]domain.Payment, error)
	SortPayments(ctx context.Context, req domain.PageRequest, paymentDate *domain.Date) (domain.Page[domain.Payment], error)
	SearchPayments(ctx context.Context, query string) ([]domain.Payment, error)
	ExportPayments(ctx context.Context, w io.Writer) error
}

type GrievanceService interface {
	RaiseGrievance(ctx context.Context, roommateID int, grievance domain.Grievance) (string, error)
	PendingGrievances(ctx context.Context) ([]domain.Grievance, error)
	MarkGrievanceRead(ctx context.Context, grievanceID int) (string, error)
}

type OwnerService interface {
	// Login verifies owner credentials and returns a session token.
	Login(ctx context.Context, req domain.OwnerLoginRequest) (string, error)
	Register(ctx context.Context, owner domain.Owner) error
}

type NotificationService interface {
	SendMailToAll(ctx context.Context) (*domain.MailResponse, error)
	SendPendingMail(ctx context.Context) (*domain.MailResponse, error)
	// RunMonthlyRentCycle resets every roommate to PAYMENT_PENDING with
	// rent recomputed from room price, referral discount and food flag,
	// then queues a reminder for each.
	RunMonthlyRentCycle(ctx context.Context) (*domain.MailResponse, error)
}
