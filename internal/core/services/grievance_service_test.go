package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func TestGrievanceService_RaiseGrievance(t *testing.T) {
	roommateRepo := newMockRoommateRepository()
	roommateRepo.seed(domain.Roommate{RoommateID: 1, Username: "alice1", RoomNumber: "F1"})
	grievanceRepo := newMockGrievanceRepository()
	service := NewGrievanceService(grievanceRepo, roommateRepo, zap.NewNop())

	t.Run("empty_content_rejected", func(t *testing.T) {
		_, err := service.RaiseGrievance(context.Background(), 1, domain.Grievance{})
		if err == nil || err.Error() != "Invalid data in Grievance" {
			t.Fatalf("expected content rejection, got %v", err)
		}
	})

	t.Run("unknown_roommate_rejected", func(t *testing.T) {
		_, err := service.RaiseGrievance(context.Background(), 99, domain.Grievance{GrievanceContent: "leaky tap"})
		if err == nil || err.Error() != "Entered Roommate id was invalid" {
			t.Fatalf("expected roommate rejection, got %v", err)
		}
	})

	t.Run("raised_grievance_is_pending", func(t *testing.T) {
		msg, err := service.RaiseGrievance(context.Background(), 1, domain.Grievance{GrievanceContent: "leaky tap"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Raised an Grievance Successfully" {
			t.Errorf("unexpected message %q", msg)
		}

		pending, err := service.PendingGrievances(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pending) != 1 || pending[0].IsRead {
			t.Errorf("expected one unread grievance, got %+v", pending)
		}
	})
}

func TestGrievanceService_MarkGrievanceRead(t *testing.T) {
	roommateRepo := newMockRoommateRepository()
	roommateRepo.seed(domain.Roommate{RoommateID: 1, Username: "alice1"})
	grievanceRepo := newMockGrievanceRepository()
	service := NewGrievanceService(grievanceRepo, roommateRepo, zap.NewNop())

	if _, err := service.RaiseGrievance(context.Background(), 1, domain.Grievance{GrievanceContent: "noise"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("unknown_id_rejected", func(t *testing.T) {
		_, err := service.MarkGrievanceRead(context.Background(), 99)
		if err == nil || err.Error() != "Entered Grievance Id was invalid" {
			t.Fatalf("expected invalid id error, got %v", err)
		}
	})

	t.Run("acknowledged_grievance_leaves_pending_list", func(t *testing.T) {
		msg, err := service.MarkGrievanceRead(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg != "Marked as Read" {
			t.Errorf("unexpected message %q", msg)
		}

		_, err = service.PendingGrievances(context.Background())
		if err == nil || err.Error() != "No Grievances so Far" {
			t.Fatalf("expected empty pending list, got %v", err)
		}
	})
}
