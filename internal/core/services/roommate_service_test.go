package services

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func newRoommateService(roommateRepo *mockRoommateRepository, roomRepo *mockRoomRepository, vacateRepo *mockVacateRepository, cache *mockRoomCache, t *testing.T) *RoommateService {
	return NewRoommateService(roommateRepo, roomRepo, vacateRepo, cache, testKey(t), zap.NewNop())
}

func seedRoommate(t *testing.T, repo *mockRoommateRepository, username, password string) domain.Roommate {
	t.Helper()
	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	roommate := domain.Roommate{
		RoommateID:       1,
		Username:         username,
		Password:         hashed,
		Email:            username + "@example.com",
		RentAmount:       7000,
		RentStatus:       domain.RentPaymentPending,
		WithFood:         true,
		RoomNumber:       "F1",
		LastModifiedDate: domain.Today().AddDays(-60),
	}
	repo.seed(roommate)
	return roommate
}

func TestRoommateService_Login(t *testing.T) {
	roommateRepo := newMockRoommateRepository()
	seedRoommate(t, roommateRepo, "alice1", "secret1")
	service := newRoommateService(roommateRepo, newMockRoomRepository(), newMockVacateRepository(), &mockRoomCache{}, t)

	t.Run("unknown_username", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), domain.LoginRequest{Username: "nobody", Password: "secret1"})
		if err == nil || err.Error() != "Username is invalid" {
			t.Fatalf("expected invalid username, got %v", err)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), domain.LoginRequest{Username: "alice1", Password: "wrong"})
		if err == nil || err.Error() != "Password was invalid" {
			t.Fatalf("expected invalid password, got %v", err)
		}
	})

	t.Run("valid_credentials_issue_token", func(t *testing.T) {
		roommate, token, err := service.Login(context.Background(), domain.LoginRequest{Username: "alice1", Password: "secret1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if roommate.Username != "alice1" {
			t.Errorf("wrong roommate returned: %+v", roommate)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	})
}

func TestRoommateService_UpdateDetails(t *testing.T) {
	t.Run("rejects_taken_username", func(t *testing.T) {
		roommateRepo := newMockRoommateRepository()
		seedRoommate(t, roommateRepo, "alice1", "secret1")
		roommateRepo.seed(domain.Roommate{RoommateID: 2, Username: "bob123", Email: "bob@example.com"})
		service := newRoommateService(roommateRepo, newMockRoomRepository(), newMockVacateRepository(), &mockRoomCache{}, t)

		taken := "bob123"
		_, err := service.UpdateDetails(context.Background(), 1, domain.UpdateDetails{Username: &taken})
		if err == nil || err.Error() != "Username already exists" {
			t.Fatalf("expected username rejection, got %v", err)
		}
	})

	t.Run("food_toggle_adjusts_rent", func(t *testing.T) {
		roommateRepo := newMockRoommateRepository()
		seedRoommate(t, roommateRepo, "alice1", "secret1")
		service := newRoommateService(roommateRepo, newMockRoomRepository(), newMockVacateRepository(), &mockRoomCache{}, t)

		withoutFood := false
		roommate, err := service.UpdateDetails(context.Background(), 1, domain.UpdateDetails{WithFood: &withoutFood})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if roommate.RentAmount != 6000 {
			t.Errorf("expected rent dropped to 6000, got %v", roommate.RentAmount)
		}
		if !roommate.LastModifiedDate.Equal(domain.Today().Time) {
			t.Errorf("expected last modified date reset, got %s", roommate.LastModifiedDate)
		}
	})

	t.Run("food_toggle_locked_within_window", func(t *testing.T) {
		roommateRepo := newMockRoommateRepository()
		roommate := seedRoommate(t, roommateRepo, "alice1", "secret1")
		roommate.LastModifiedDate = domain.Today()
		roommateRepo.seed(roommate)
		service := newRoommateService(roommateRepo, newMockRoomRepository(), newMockVacateRepository(), &mockRoomCache{}, t)

		withoutFood := false
		_, err := service.UpdateDetails(context.Background(), 1, domain.UpdateDetails{WithFood: &withoutFood})
		if !domain.IsBusinessError(err) || !strings.Contains(err.Error(), "You can edit the Food service only after") {
			t.Fatalf("expected toggle lock, got %v", err)
		}
	})
}

func TestRoommateService_Vacate(t *testing.T) {
	roommateRepo := newMockRoommateRepository()
	seedRoommate(t, roommateRepo, "alice1", "secret1")
	cache := &mockRoomCache{}
	service := newRoommateService(roommateRepo, newMockRoomRepository(), newMockVacateRepository(), cache, t)

	if err := service.Vacate(context.Background(), "nobody"); err == nil || err.Error() != "No Roommate present under this Username" {
		t.Fatalf("expected missing roommate error, got %v", err)
	}

	if err := service.Vacate(context.Background(), "alice1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roommateRepo.RemoveCalls) != 1 || roommateRepo.RemoveCalls[0] != "alice1" {
		t.Errorf("expected alice1 removed, got %v", roommateRepo.RemoveCalls)
	}
	if cache.InvalidateCalls != 1 {
		t.Error("expected room cache invalidation")
	}
}

func TestRoommateService_SendVacateRequest(t *testing.T) {
	newService := func(t *testing.T) (*RoommateService, *mockRoommateRepository, *mockVacateRepository) {
		roommateRepo := newMockRoommateRepository()
		seedRoommate(t, roommateRepo, "alice1", "secret1")
		vacateRepo := newMockVacateRepository()
		return newRoommateService(roommateRepo, newMockRoomRepository(), vacateRepo, &mockRoomCache{}, t), roommateRepo, vacateRepo
	}

	t.Run("past_checkout_rejected", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.SendVacateRequest(context.Background(), 1, domain.VacateRequest{
			CheckOutDate: domain.Today().AddDays(-1),
		})
		if !domain.IsBusinessError(err) || !strings.Contains(err.Error(), "CheckOut Date can't be in Past") {
			t.Fatalf("expected past date rejection, got %v", err)
		}
	})

	t.Run("second_request_rejected", func(t *testing.T) {
		service, _, _ := newService(t)
		request := domain.VacateRequest{CheckOutDate: domain.Today().AddDays(10), VacateReason: "moving"}
		if _, err := service.SendVacateRequest(context.Background(), 1, request); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := service.SendVacateRequest(context.Background(), 1, request)
		if err == nil || err.Error() != "Already Vacate Request have been sent" {
			t.Fatalf("expected duplicate rejection, got %v", err)
		}
	})

	t.Run("request_updates_checkout_date", func(t *testing.T) {
		service, roommateRepo, vacateRepo := newService(t)
		checkOut := domain.Today().AddDays(15)
		msg, err := service.SendVacateRequest(context.Background(), 1, domain.VacateRequest{
			CheckOutDate: checkOut,
			VacateReason: "moving",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Vacate Request Sent Successfully" {
			t.Errorf("unexpected message %q", msg)
		}
		if len(vacateRepo.CreateCalls) != 1 {
			t.Fatalf("expected one vacate request, got %d", len(vacateRepo.CreateCalls))
		}
		stored, _ := roommateRepo.FindByID(context.Background(), 1)
		if !stored.CheckOutDate.Equal(checkOut.Time) {
			t.Errorf("roommate checkout not updated: %s", stored.CheckOutDate)
		}
	})
}

func TestRoommateService_MarkVacateRead(t *testing.T) {
	roommateRepo := newMockRoommateRepository()
	seedRoommate(t, roommateRepo, "alice1", "secret1")
	vacateRepo := newMockVacateRepository()
	service := newRoommateService(roommateRepo, newMockRoomRepository(), vacateRepo, &mockRoomCache{}, t)

	if _, err := service.SendVacateRequest(context.Background(), 1, domain.VacateRequest{
		CheckOutDate: domain.Today().AddDays(5),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.MarkVacateRead(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Acknowledged requests disappear from the pending list entirely.
	_, err := service.PendingVacateRequests(context.Background())
	if err == nil || err.Error() != "No Vacate Request so Far" {
		t.Fatalf("expected empty pending list, got %v", err)
	}
}

func TestRoommateService_SortRoommates(t *testing.T) {
	roommateRepo := newMockRoommateRepository()
	service := newRoommateService(roommateRepo, newMockRoomRepository(), newMockVacateRepository(), &mockRoomCache{}, t)

	t.Run("empty_page_is_business_error", func(t *testing.T) {
		_, err := service.SortRoommates(context.Background(), domain.PageRequest{Limit: 10}, nil)
		if err == nil || err.Error() != "No Roommates available" {
			t.Fatalf("expected empty page error, got %v", err)
		}
	})

	t.Run("returns_page_envelope", func(t *testing.T) {
		roommateRepo.Page = domain.NewPage([]domain.Roommate{{Username: "alice1"}}, 1, 0, 10)
		page, err := service.SortRoommates(context.Background(), domain.PageRequest{Limit: 10}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalElements != 1 || len(page.Content) != 1 {
			t.Errorf("unexpected page %+v", page)
		}
	})
}
