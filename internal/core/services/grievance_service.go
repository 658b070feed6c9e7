package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type GrievanceService struct {
	grievanceRepo ports.GrievanceRepository
	roommateRepo  ports.RoommateRepository
	logger        *zap.Logger
}

var _ ports.GrievanceService = (*GrievanceService)(nil)

func NewGrievanceService(grievanceRepo ports.GrievanceRepository, roommateRepo ports.RoommateRepository, logger *zap.Logger) *GrievanceService {
	return &GrievanceService{
		grievanceRepo: grievanceRepo,
		roommateRepo:  roommateRepo,
		logger:        logger,
	}
}

func (s *GrievanceService) RaiseGrievance(ctx context.Context, roommateID int, grievance domain.Grievance) (string, error) {
	if grievance.GrievanceContent == "" {
		return "", domain.BusinessErrorf("Invalid data in Grievance")
	}
	roommate, err := s.roommateRepo.FindByID(ctx, roommateID)
	if err != nil {
		return "", err
	}
	if roommate == nil {
		return "", domain.BusinessErrorf("Entered Roommate id was invalid")
	}

	grievance.RoommateID = roommateID
	grievance.CreatedAt = domain.Today()
	grievance.IsRead = false
	if err := s.grievanceRepo.Create(ctx, &grievance); err != nil {
		return "", err
	}

	s.logger.Info("grievance raised", zap.Int("roommate_id", roommateID))
	return "Raised an Grievance Successfully", nil
}

func (s *GrievanceService) PendingGrievances(ctx context.Context) ([]domain.Grievance, error) {
	grievances, err := s.grievanceRepo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	if len(grievances) == 0 {
		return nil, domain.BusinessErrorf("No Grievances so Far")
	}
	return grievances, nil
}

func (s *GrievanceService) MarkGrievanceRead(ctx context.Context, grievanceID int) (string, error) {
	if err := s.grievanceRepo.MarkRead(ctx, grievanceID); err != nil {
		return "", err
	}
	s.logger.Info("grievance acknowledged", zap.Int("grievance_id", grievanceID))
	return "Marked as Read", nil
}
