package ports

import (
	"context"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

type RoomRepository interface {
	FindAll(ctx context.Context) ([]domain.Room, error)
	FindByID(ctx context.Context, roomID int) (*domain.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	ExistsByRoomNumber(ctx context.Context, roomNumber string) (bool, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, roomID int) error
	Count(ctx context.Context) (int, error)
}

type RoommateRepository interface {
	FindAll(ctx context.Context) ([]domain.Roommate, error)
	FindByID(ctx context.Context, roommateID int) (*domain.Roommate, error)
	FindByUsername(ctx context.Context, username string) (*domain.Roommate, error)
	FindByReferralID(ctx context.Context, referralID string) (*domain.Roommate, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateInRoom inserts the roommate and claims one bed in the room,
	// atomically.
	CreateInRoom(ctx context.Context, roommate *domain.Roommate, roomID int) error

	// Remove deletes the roommate and releases their bed, atomically.
	Remove(ctx context.Context, roommate *domain.Roommate) error

	Update(ctx context.Context, roommate *domain.Roommate) error
	UpdateRentBatch(ctx context.Context, roommates []domain.Roommate) error

	// AddReferral credits the referrer with one more referral.
	AddReferral(ctx context.Context, referrerID int, detail domain.ReferralDetail) error
	// PruneReferrals drops the referrer's referral records whose roommate
	// unique id is no longer active.
	PruneReferrals(ctx context.Context, referrerID int, activeUniqueIDs []string) error

	FindPage(ctx context.Context, req domain.PageRequest, rentStatus *domain.RentStatus) (domain.Page[domain.Roommate], error)
}

type VacateRepository interface {
	Create(ctx context.Context, request *domain.VacateRequest) error
	ExistsForRoommate(ctx context.Context, roommateID int) (bool, error)
	FindPending(ctx context.Context) ([]domain.VacateRequest, error)
	Delete(ctx context.Context, vacateRequestID int) error
}

type GrievanceRepository interface {
	Create(ctx context.Context, grievance *domain.Grievance) error
	FindPending(ctx context.Context) ([]domain.Grievance, error)
	MarkRead(ctx context.Context, grievanceID int) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	FindAll(ctx context.Context) ([]domain.Payment, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	FindPage(ctx context.Context, req domain.PageRequest, paymentDate *domain.Date) (domain.Page[domain.Payment], error)
	SearchByUsername(ctx context.Context, username string) ([]domain.Payment, error)
	SearchByRoomNumber(ctx context.Context, roomNumber string) ([]domain.Payment, error)
}

type OwnerRepository interface {
	FindByName(ctx context.Context, ownerName string) (*domain.Owner, error)
	ExistsByName(ctx context.Context, ownerName string) (bool, error)
	Create(ctx context.Context, owner *domain.Owner) error
}

// OutboxRepository stores events for the relay to deliver. Each inserted row
// is announced on the outbox channel via pg_notify.
type OutboxRepository interface {
	Enqueue(ctx context.Context, eventType string, payloads [][]byte) error
}
