package services

import (
	"context"
	"crypto/rsa"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type RoommateService struct {
	roommateRepo ports.RoommateRepository
	roomRepo     ports.RoomRepository
	vacateRepo   ports.VacateRepository
	cache        ports.RoomCache
	privateKey   *rsa.PrivateKey
	logger       *zap.Logger
}

var _ ports.RoommateService = (*RoommateService)(nil)

func NewRoommateService(
	roommateRepo ports.RoommateRepository,
	roomRepo ports.RoomRepository,
	vacateRepo ports.VacateRepository,
	cache ports.RoomCache,
	privateKey *rsa.PrivateKey,
	logger *zap.Logger,
) *RoommateService {
	return &RoommateService{
		roommateRepo: roommateRepo,
		roomRepo:     roomRepo,
		vacateRepo:   vacateRepo,
		cache:        cache,
		privateKey:   privateKey,
		logger:       logger,
	}
}

func (s *RoommateService) Login(ctx context.Context, req domain.LoginRequest) (*domain.Roommate, string, error) {
	roommate, err := s.roommateRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if roommate == nil {
		return nil, "", domain.BusinessErrorf("Username is invalid")
	}
	if !CheckPasswordHash(req.Password, roommate.Password) {
		return nil, "", domain.BusinessErrorf("Password was invalid")
	}

	token, err := signToken(s.privateKey, strconv.Itoa(roommate.RoommateID), domain.RoleRoommate)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("roommate logged in", zap.String("username", req.Username))
	return roommate, token, nil
}

func (s *RoommateService) GetAllRoommates(ctx context.Context) ([]domain.Roommate, error) {
	roommates, err := s.roommateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(roommates) == 0 {
		return nil, domain.BusinessErrorf("No Roommate available")
	}
	s.logger.Info("fetched roommates", zap.Int("count", len(roommates)))
	return roommates, nil
}

func (s *RoommateService) UpdateDetails(ctx context.Context, roommateID int, update domain.UpdateDetails) (*domain.Roommate, error) {
	roommate, err := s.roommateRepo.FindByID(ctx, roommateID)
	if err != nil {
		return nil, err
	}
	if roommate == nil {
		return nil, domain.BusinessErrorf("No Roommate found under this Id")
	}

	if update.Username != nil && *update.Username != roommate.Username {
		exists, err := s.roommateRepo.ExistsByUsername(ctx, *update.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.BusinessErrorf("Username already exists")
		}
		roommate.Username = *update.Username
	}
	if update.Email != nil && *update.Email != roommate.Email {
		exists, err := s.roommateRepo.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.BusinessErrorf("Email already exists")
		}
		roommate.Email = *update.Email
	}
	if update.Password != nil && len(*update.Password) > 5 {
		hashed, err := HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		roommate.Password = hashed
	}
	if update.WithFood != nil && roommate.WithFood != *update.WithFood {
		lockedUntil := roommate.LastModifiedDate.AddDays(domain.FoodToggleLockDays)
		if domain.Today().Before(lockedUntil.Time) {
			return nil, domain.BusinessErrorf(fmt.Sprintf("You can edit the Food service only after : %s", lockedUntil))
		}
		roommate.LastModifiedDate = domain.Today()
		roommate.WithFood = *update.WithFood
		if *update.WithFood {
			roommate.RentAmount += domain.WithoutFoodDiscount
		} else {
			roommate.RentAmount -= domain.WithoutFoodDiscount
		}
	}
	if update.CheckOutDate != nil {
		roommate.CheckOutDate = *update.CheckOutDate
	}

	if err := s.roommateRepo.Update(ctx, roommate); err != nil {
		return nil, err
	}
	s.logger.Info("roommate details updated", zap.Int("roommate_id", roommateID))
	return roommate, nil
}

func (s *RoommateService) Vacate(ctx context.Context, username string) error {
	roommate, err := s.roommateRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if roommate == nil {
		return domain.BusinessErrorf("No Roommate present under this Username")
	}

	if err := s.roommateRepo.Remove(ctx, roommate); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	s.logger.Info("roommate vacated", zap.String("username", username), zap.String("room", roommate.RoomNumber))
	return nil
}

func (s *RoommateService) SendVacateRequest(ctx context.Context, roommateID int, request domain.VacateRequest) (string, error) {
	roommate, err := s.roommateRepo.FindByID(ctx, roommateID)
	if err != nil {
		return "", err
	}
	if roommate == nil {
		return "", domain.BusinessErrorf("No Roommate found under this Id")
	}
	if request.CheckOutDate.Before(domain.Today().Time) {
		return "", domain.BusinessErrorf(fmt.Sprintf("CheckOut Date can't be in Past :%s", request.CheckOutDate))
	}

	pending, err := s.vacateRepo.ExistsForRoommate(ctx, roommateID)
	if err != nil {
		return "", err
	}
	if pending {
		return "", domain.BusinessErrorf("Already Vacate Request have been sent")
	}

	request.RoommateID = roommateID
	request.IsRead = false
	request.CreatedAt = domain.Today()
	if err := s.vacateRepo.Create(ctx, &request); err != nil {
		return "", err
	}

	roommate.CheckOutDate = request.CheckOutDate
	if err := s.roommateRepo.Update(ctx, roommate); err != nil {
		return "", err
	}

	s.logger.Info("vacate request sent", zap.Int("roommate_id", roommateID))
	return "Vacate Request Sent Successfully", nil
}

func (s *RoommateService) PendingVacateRequests(ctx context.Context) ([]domain.VacateRequest, error) {
	requests, err := s.vacateRepo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, domain.BusinessErrorf("No Vacate Request so Far")
	}
	return requests, nil
}

func (s *RoommateService) MarkVacateRead(ctx context.Context, vacateRequestID int) error {
	// Acknowledged requests are removed outright; the pending list is the
	// only view over them.
	if err := s.vacateRepo.Delete(ctx, vacateRequestID); err != nil {
		return err
	}
	s.logger.Info("vacate request acknowledged", zap.Int("vacate_request_id", vacateRequestID))
	return nil
}

func (s *RoommateService) SortRoommates(ctx context.Context, req domain.PageRequest, rentStatus *domain.RentStatus) (domain.Page[domain.Roommate], error) {
	page, err := s.roommateRepo.FindPage(ctx, req, rentStatus)
	if err != nil {
		return page, err
	}
	if len(page.Content) == 0 {
		return page, domain.BusinessErrorf("No Roommates available")
	}
	s.logger.Info("fetched roommate page", zap.Int64("total", page.TotalElements))
	return page, nil
}
