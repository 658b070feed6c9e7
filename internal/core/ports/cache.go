package ports

import (
	"context"
	"time"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

// RoomCache holds the full room listing between occupancy mutations. A miss
// (or any cache failure) falls through to the repository.
type RoomCache interface {
	GetAllRooms(ctx context.Context) ([]domain.Room, bool)
	SetAllRooms(ctx context.Context, rooms []domain.Room)
	Invalidate(ctx context.Context)
}

// TokenDenyList records tokens revoked by logout until they expire on their
// own. Lookup failures are treated as "not denied" so a cache outage cannot
// lock everyone out.
type TokenDenyList interface {
	Deny(ctx context.Context, token string, ttl time.Duration) error
	IsDenied(ctx context.Context, token string) bool
}
