package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type GrievanceHandler struct {
	grievanceService ports.GrievanceService
}

func NewGrievanceHandler(grievanceService ports.GrievanceService) *GrievanceHandler {
	return &GrievanceHandler{grievanceService: grievanceService}
}

func (h *GrievanceHandler) Raise(w http.ResponseWriter, r *http.Request) {
	roommateID, err := pathInt(r, "roommateId")
	if err != nil {
		http.Error(w, "invalid roommate id", http.StatusBadRequest)
		return
	}

	var grievance domain.Grievance
	if err := json.NewDecoder(r.Body).Decode(&grievance); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	message, err := h.grievanceService.RaiseGrievance(r.Context(), roommateID, grievance)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, message)
}

func (h *GrievanceHandler) Pending(w http.ResponseWriter, r *http.Request) {
	grievances, err := h.grievanceService.PendingGrievances(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grievances)
}

func (h *GrievanceHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	grievanceID, err := pathInt(r, "grievanceId")
	if err != nil {
		http.Error(w, "invalid grievance id", http.StatusBadRequest)
		return
	}

	message, err := h.grievanceService.MarkGrievanceRead(r.Context(), grievanceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, message)
}
