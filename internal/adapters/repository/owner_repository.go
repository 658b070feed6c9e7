package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type OwnerSQLRepository struct {
	db *sql.DB
}

var _ ports.OwnerRepository = (*OwnerSQLRepository)(nil)

func NewOwnerSQLRepository(db *sql.DB) *OwnerSQLRepository {
	return &OwnerSQLRepository{db: db}
}

func (r *OwnerSQLRepository) FindByName(ctx context.Context, ownerName string) (*domain.Owner, error) {
	var owner domain.Owner
	err := r.db.QueryRowContext(ctx,
		"SELECT owner_id, owner_name, password FROM owners WHERE owner_name = $1",
		ownerName,
	).Scan(&owner.OwnerID, &owner.OwnerName, &owner.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerSQLRepository) ExistsByName(ctx context.Context, ownerName string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM owners WHERE owner_name = $1)", ownerName).Scan(&exists)
	return exists, err
}

func (r *OwnerSQLRepository) Create(ctx context.Context, owner *domain.Owner) error {
	return r.db.QueryRowContext(ctx,
		"INSERT INTO owners (owner_name, password) VALUES ($1, $2) RETURNING owner_id",
		owner.OwnerName,
		owner.Password,
	).Scan(&owner.OwnerID)
}
