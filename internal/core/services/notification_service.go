package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

const (
	// EventRentReminder is the outbox event type consumed by the relay.
	EventRentReminder = "rent.reminder"

	// Rent is due this many days after the monthly cycle runs.
	rentDueDays = 5
)

type NotificationService struct {
	roommateRepo ports.RoommateRepository
	roomRepo     ports.RoomRepository
	outbox       ports.OutboxRepository
	logger       *zap.Logger
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(roommateRepo ports.RoommateRepository, roomRepo ports.RoomRepository, outbox ports.OutboxRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		roommateRepo: roommateRepo,
		roomRepo:     roomRepo,
		outbox:       outbox,
		logger:       logger,
	}
}

func (s *NotificationService) SendMailToAll(ctx context.Context) (*domain.MailResponse, error) {
	roommates, err := s.roommateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(roommates) == 0 {
		return nil, domain.BusinessErrorf("No Roommates details present")
	}

	if err := s.enqueueReminders(ctx, roommates); err != nil {
		return nil, err
	}
	s.logger.Info("queued reminders for all roommates", zap.Int("count", len(roommates)))
	return &domain.MailResponse{Message: "Mail sent successfully", Status: true}, nil
}

func (s *NotificationService) SendPendingMail(ctx context.Context) (*domain.MailResponse, error) {
	roommates, err := s.roommateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Only PAYMENT_PENDING counts: a roommate mid-checkout (PAYMENT_CREATED)
	// is not nagged again.
	var pending []domain.Roommate
	for _, roommate := range roommates {
		if roommate.RentStatus == domain.RentPaymentPending {
			pending = append(pending, roommate)
		}
	}
	if len(pending) == 0 {
		return &domain.MailResponse{Message: "There are no Payment Pending from Roommates", Status: false}, nil
	}

	if err := s.enqueueReminders(ctx, pending); err != nil {
		return nil, err
	}
	s.logger.Info("queued reminders for pending roommates", zap.Int("count", len(pending)))
	return &domain.MailResponse{Message: "Mail sent successfully to the Remaining Roommates", Status: true}, nil
}

// RunMonthlyRentCycle recomputes every roommate's rent from the current room
// price, active referrals and food preference, flips them back to
// PAYMENT_PENDING and queues a reminder for each.
func (s *NotificationService) RunMonthlyRentCycle(ctx context.Context) (*domain.MailResponse, error) {
	roommates, err := s.roommateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(roommates) == 0 {
		return nil, domain.BusinessErrorf("No Roommates details present")
	}
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	priceByRoom := make(map[string]float64, len(rooms))
	for _, room := range rooms {
		priceByRoom[room.RoomNumber] = room.Price
	}
	activeIDs := make(map[string]bool, len(roommates))
	for _, roommate := range roommates {
		activeIDs[roommate.UniqueID] = true
	}

	for i := range roommates {
		roommate := &roommates[i]

		// Referrals of vacated roommates no longer earn a discount.
		var kept []string
		for _, detail := range roommate.ReferralDetails {
			if activeIDs[detail.RoommateUniqueID] {
				kept = append(kept, detail.RoommateUniqueID)
			}
		}
		if len(kept) < len(roommate.ReferralDetails) {
			if err := s.roommateRepo.PruneReferrals(ctx, roommate.RoommateID, kept); err != nil {
				return nil, err
			}
		}

		price := priceByRoom[roommate.RoomNumber]
		rent := price - price*(domain.ReferralDiscount*float64(len(kept)))
		if !roommate.WithFood {
			rent -= domain.WithoutFoodDiscount
		}
		roommate.RentAmount = rent
		roommate.RentStatus = domain.RentPaymentPending
	}

	if err := s.roommateRepo.UpdateRentBatch(ctx, roommates); err != nil {
		return nil, err
	}
	if err := s.enqueueReminders(ctx, roommates); err != nil {
		return nil, err
	}

	s.logger.Info("monthly rent cycle completed", zap.Int("roommates", len(roommates)))
	return &domain.MailResponse{Message: "Mail sent successfully", Status: true}, nil
}

func (s *NotificationService) enqueueReminders(ctx context.Context, roommates []domain.Roommate) error {
	today := domain.Today()
	dueDate := today.AddDays(rentDueDays)

	payloads := make([][]byte, 0, len(roommates))
	for _, roommate := range roommates {
		payload, err := json.Marshal(ports.RentReminderEvent{
			Username:   roommate.Username,
			Email:      roommate.Email,
			RentAmount: roommate.RentAmount,
			Month:      today.Month().String(),
			DueDate:    dueDate.String(),
		})
		if err != nil {
			return err
		}
		payloads = append(payloads, payload)
	}
	return s.outbox.Enqueue(ctx, EventRentReminder, payloads)
}
