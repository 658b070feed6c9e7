package services

import (
	"context"
	"crypto/rsa"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type OwnerService struct {
	ownerRepo  ports.OwnerRepository
	privateKey *rsa.PrivateKey
	logger     *zap.Logger
}

var _ ports.OwnerService = (*OwnerService)(nil)

func NewOwnerService(ownerRepo ports.OwnerRepository, privateKey *rsa.PrivateKey, logger *zap.Logger) *OwnerService {
	return &OwnerService{
		ownerRepo:  ownerRepo,
		privateKey: privateKey,
		logger:     logger,
	}
}

func (s *OwnerService) Login(ctx context.Context, req domain.OwnerLoginRequest) (string, error) {
	s.logger.Info("owner login attempt", zap.String("owner", req.OwnerName))

	owner, err := s.ownerRepo.FindByName(ctx, req.OwnerName)
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", domain.BusinessErrorf("Owner name is invalid")
	}
	if !CheckPasswordHash(req.Password, owner.Password) {
		return "", domain.BusinessErrorf("Password is Invalid")
	}

	token, err := signToken(s.privateKey, owner.OwnerName, domain.RoleOwner)
	if err != nil {
		return "", err
	}

	s.logger.Info("owner authenticated", zap.String("owner", owner.OwnerName))
	return token, nil
}

// Register stores the owner account if it does not already exist. Used by
// the startup seed.
func (s *OwnerService) Register(ctx context.Context, owner domain.Owner) error {
	if owner.OwnerName == "" || owner.Password == "" {
		return domain.BusinessErrorf("Owner details are invalid")
	}
	exists, err := s.ownerRepo.ExistsByName(ctx, owner.OwnerName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := HashPassword(owner.Password)
	if err != nil {
		return err
	}
	owner.Password = hashed

	if err := s.ownerRepo.Create(ctx, &owner); err != nil {
		return err
	}
	s.logger.Info("owner account created", zap.String("owner", owner.OwnerName))
	return nil
}
