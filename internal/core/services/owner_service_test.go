package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func TestOwnerService_Login(t *testing.T) {
	ownerRepo := newMockOwnerRepository()
	service := NewOwnerService(ownerRepo, testKey(t), zap.NewNop())

	if err := service.Register(context.Background(), domain.Owner{OwnerName: "Sacchin", Password: "1234"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("unknown_owner", func(t *testing.T) {
		_, err := service.Login(context.Background(), domain.OwnerLoginRequest{OwnerName: "nobody", Password: "1234"})
		if err == nil || err.Error() != "Owner name is invalid" {
			t.Fatalf("expected owner rejection, got %v", err)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(context.Background(), domain.OwnerLoginRequest{OwnerName: "Sacchin", Password: "wrong"})
		if err == nil || err.Error() != "Password is Invalid" {
			t.Fatalf("expected password rejection, got %v", err)
		}
	})

	t.Run("valid_credentials_issue_token", func(t *testing.T) {
		token, err := service.Login(context.Background(), domain.OwnerLoginRequest{OwnerName: "Sacchin", Password: "1234"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	})
}

func TestOwnerService_RegisterIsIdempotent(t *testing.T) {
	ownerRepo := newMockOwnerRepository()
	service := NewOwnerService(ownerRepo, testKey(t), zap.NewNop())

	if err := service.Register(context.Background(), domain.Owner{OwnerName: "Sacchin", Password: "1234"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := ownerRepo.FindByName(context.Background(), "Sacchin")
	firstHash := stored.Password
	if firstHash == "1234" {
		t.Fatal("password stored in clear")
	}

	// Re-registering must not overwrite the stored credentials.
	if err := service.Register(context.Background(), domain.Owner{OwnerName: "Sacchin", Password: "changed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ = ownerRepo.FindByName(context.Background(), "Sacchin")
	if stored.Password != firstHash {
		t.Error("existing owner credentials were overwritten")
	}
}
