package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

const (
	// Rent is prorated from the per-day price for check-ins after this
	// day of the month.
	fullRentCutoffDay = 5
	// Referral ids shorter than this cannot be valid and are ignored.
	referralIDMinLength = 8
	minimumUsernameLen  = 6
	minimumPasswordLen  = 6
)

type RoomService struct {
	roomRepo     ports.RoomRepository
	roommateRepo ports.RoommateRepository
	cache        ports.RoomCache
	logger       *zap.Logger
}

var _ ports.RoomService = (*RoomService)(nil)

func NewRoomService(roomRepo ports.RoomRepository, roommateRepo ports.RoommateRepository, cache ports.RoomCache, logger *zap.Logger) *RoomService {
	return &RoomService{
		roomRepo:     roomRepo,
		roommateRepo: roommateRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *RoomService) GetAllRooms(ctx context.Context) ([]domain.Room, error) {
	if rooms, ok := s.cache.GetAllRooms(ctx); ok {
		return rooms, nil
	}

	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.BusinessErrorf("No Rooms are Added in the System")
	}
	s.logger.Info("fetched rooms", zap.Int("count", len(rooms)))

	s.cache.SetAllRooms(ctx, rooms)
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID int) (*domain.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.BusinessErrorf("Mentioned Room Id is not available")
	}
	return room, nil
}

func (s *RoomService) CheckAvailability(ctx context.Context, req domain.AvailabilityRequest) ([]domain.Room, error) {
	rooms, err := s.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.BusinessErrorf("No Rooms are Added in the System")
	}

	var matching []domain.Room
	for _, room := range rooms {
		if strings.EqualFold(req.RoomType, room.RoomType) &&
			req.Capacity <= room.FreeCapacity() &&
			req.WithAC == room.IsAcAvailable {
			matching = append(matching, room)
		}
	}
	if len(matching) == 0 {
		return nil, domain.BusinessErrorf("Rooms are not available with your Condition")
	}
	s.logger.Info("found matching rooms", zap.Int("count", len(matching)))
	return matching, nil
}

func (s *RoomService) BookRoom(ctx context.Context, roomID int, req domain.BookingRequest) (*domain.Roommate, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.BusinessErrorf("Mentioned Room ID is not available")
	}

	if !req.CheckOutDate.IsZero() && req.CheckOutDate.Before(domain.Today().Time) {
		return nil, domain.BusinessErrorf("Checkout date can't be entered as past date")
	}
	if room.IsFull() {
		return nil, domain.BusinessErrorf("Room was Full")
	}

	if err := s.checkUsernameEmail(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	roommate := &domain.Roommate{
		UniqueID:         generateRoommateUniqueID(req.Username),
		Username:         req.Username,
		Password:         hashed,
		Email:            req.Email,
		Gender:           req.Gender,
		WithFood:         req.WithFood,
		CheckInDate:      req.CheckInDate,
		CheckOutDate:     req.CheckOutDate,
		LastModifiedDate: domain.Today(),
		ReferralID:       generateReferralID(req.Username),
		ReferralCount:    0,
		RentStatus:       domain.RentPaymentPending,
		RoomNumber:       room.RoomNumber,
	}

	if len(req.ReferralID) > referralIDMinLength {
		if err := s.processReferral(ctx, req.ReferralID, roommate); err != nil {
			return nil, err
		}
	}

	roommate.RentAmount = s.initialRent(room, req)

	if err := s.roommateRepo.CreateInRoom(ctx, roommate, room.RoomID); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	s.logger.Info("room booked", zap.String("username", roommate.Username), zap.String("room", room.RoomNumber))
	return roommate, nil
}

// initialRent prorates the first month when check-in falls after the cutoff
// day of the current month; otherwise the full monthly price applies.
func (s *RoomService) initialRent(room *domain.Room, req domain.BookingRequest) float64 {
	now := domain.Today()
	cutoff := domain.NewDate(now.Year(), now.Month(), fullRentCutoffDay)

	checkIn := req.CheckInDate
	if checkIn.After(cutoff.Time) && checkIn.Month() == cutoff.Month() && checkIn.Year() == cutoff.Year() {
		days := checkIn.DaysUntil(checkIn.EndOfMonth())
		rent := room.PerDayPrice * float64(days)
		if !req.WithFood {
			rent -= domain.WithoutFoodDiscount
		}
		return rent
	}

	if req.WithFood {
		return room.Price
	}
	return room.PriceWithoutFood()
}

func (s *RoomService) processReferral(ctx context.Context, referralID string, roommate *domain.Roommate) error {
	referrer, err := s.roommateRepo.FindByReferralID(ctx, referralID)
	if err != nil {
		return err
	}
	if referrer == nil {
		return domain.BusinessErrorf("No Roommate matches with the entered Referral ID")
	}
	if referrer.ReferralCount >= domain.MaxReferrals {
		return domain.BusinessErrorf(fmt.Sprintf("Already %s have reached max referrals", referrer.Username))
	}

	detail := domain.ReferralDetail{
		Username:         roommate.Username,
		ReferralDate:     domain.Today(),
		RoommateUniqueID: roommate.UniqueID,
	}
	if err := s.roommateRepo.AddReferral(ctx, referrer.RoommateID, detail); err != nil {
		return err
	}
	s.logger.Info("referral processed", zap.String("referrer", referrer.Username), zap.String("referred", roommate.Username))
	return nil
}

func (s *RoomService) checkUsernameEmail(ctx context.Context, username, email string) error {
	usernameExists, err := s.roommateRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if usernameExists {
		return domain.BusinessErrorf("Username Already Exists!!!")
	}
	emailExists, err := s.roommateRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if emailExists {
		return domain.BusinessErrorf("Email ID Already Exists!!!")
	}
	return nil
}

func (s *RoomService) AddRoom(ctx context.Context, room *domain.Room) (string, error) {
	if room == nil {
		return "", domain.BusinessErrorf("Invalid Room Details")
	}
	exists, err := s.roomRepo.ExistsByRoomNumber(ctx, room.RoomNumber)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.BusinessErrorf(fmt.Sprintf("Already this Room number : %s was taken", room.RoomNumber))
	}
	if room.Capacity <= 0 {
		return "", domain.BusinessErrorf(fmt.Sprintf("Total Capacity must be greater than 0. Provided : %d", room.Capacity))
	}
	if room.CurrentCapacity > room.Capacity {
		return "", domain.BusinessErrorf("Current capacity cannot be more than total capacity")
	}
	if room.Price < domain.WithoutFoodDiscount {
		return "", domain.BusinessErrorf("Room rent should be more than 1000")
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx)
	s.logger.Info("room added", zap.String("room", room.RoomNumber))
	return "Room have been added Successfully", nil
}

func (s *RoomService) EditRoom(ctx context.Context, roomID int, update domain.RoomUpdate) (*domain.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.BusinessErrorf(fmt.Sprintf("No Room found under this %d Id", roomID))
	}

	if update.RoomNumber != nil && *update.RoomNumber != room.RoomNumber {
		exists, err := s.roomRepo.ExistsByRoomNumber(ctx, *update.RoomNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.BusinessErrorf("Already this room number exists")
		}
		room.RoomNumber = *update.RoomNumber
	}
	if update.RoomType != nil {
		room.RoomType = *update.RoomType
	}
	if update.Price != nil {
		room.Price = *update.Price
	}
	if update.FloorNumber != nil {
		room.FloorNumber = *update.FloorNumber
	}
	if update.Capacity != nil {
		if *update.Capacity < 0 {
			return nil, domain.BusinessErrorf("Capacity cannot be less than 0")
		}
		room.Capacity = *update.Capacity
	}
	if update.CurrentCapacity != nil {
		if *update.CurrentCapacity > room.Capacity {
			return nil, domain.BusinessErrorf("Current capacity cannot exceed total capacity")
		}
		room.CurrentCapacity = *update.CurrentCapacity
	}
	if update.IsAcAvailable != nil {
		room.IsAcAvailable = *update.IsAcAvailable
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	s.logger.Info("room updated", zap.Int("room_id", roomID))
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, roomID int) (string, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		return "", err
	}
	if room == nil {
		return "", domain.BusinessErrorf("Mentioned Room Id is not available")
	}
	if len(room.RoommateList) > 0 {
		return "", domain.BusinessErrorf("This room is not empty to delete")
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return "", err
	}
	s.cache.Invalidate(ctx)
	s.logger.Info("room deleted", zap.Int("room_id", roomID))
	return "Room deleted Successfully", nil
}

func validateBooking(req domain.BookingRequest) error {
	switch {
	case len(req.Username) < minimumUsernameLen:
		return domain.BusinessErrorf("Username should have min 6 characters")
	case len(req.Password) < minimumPasswordLen:
		return domain.BusinessErrorf("Password should have min 6 characters")
	case req.Email == "":
		return domain.BusinessErrorf("Email is required")
	case req.Gender == "":
		return domain.BusinessErrorf("Gender is required")
	case req.CheckInDate.IsZero():
		return domain.BusinessErrorf("Check-in date is required")
	}
	return nil
}

func generateRoommateUniqueID(username string) string {
	return username[:4] + uuid.NewString()[:4]
}

func generateReferralID(username string) string {
	return username + "-" + uuid.NewString()[:8]
}
