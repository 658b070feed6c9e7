package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type RoommateHandler struct {
	roommateService ports.RoommateService
}

func NewRoommateHandler(roommateService ports.RoommateService) *RoommateHandler {
	return &RoommateHandler{roommateService: roommateService}
}

type RoommateLoginResponse struct {
	Token    string           `json:"token"`
	Roommate *domain.Roommate `json:"roommate"`
}

// Login returns the full roommate profile together with a session token.
func (h *RoommateHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	roommate, token, err := h.roommateService.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RoommateLoginResponse{Token: token, Roommate: roommate})
}

func (h *RoommateHandler) GetAllRoommates(w http.ResponseWriter, r *http.Request) {
	roommates, err := h.roommateService.GetAllRoommates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roommates)
}

func (h *RoommateHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	roommateID, err := pathInt(r, "roommateId")
	if err != nil {
		http.Error(w, "invalid roommate id", http.StatusBadRequest)
		return
	}

	var update domain.UpdateDetails
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	roommate, err := h.roommateService.UpdateDetails(r.Context(), roommateID, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roommate)
}

func (h *RoommateHandler) Vacate(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		http.Error(w, "invalid username", http.StatusBadRequest)
		return
	}

	if err := h.roommateService.Vacate(r.Context(), username); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Roommate removed Successfully")
}

func (h *RoommateHandler) SendVacateRequest(w http.ResponseWriter, r *http.Request) {
	roommateID, err := pathInt(r, "roommateId")
	if err != nil {
		http.Error(w, "invalid roommate id", http.StatusBadRequest)
		return
	}

	var request domain.VacateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	message, err := h.roommateService.SendVacateRequest(r.Context(), roommateID, request)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, message)
}

func (h *RoommateHandler) PendingVacateRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.roommateService.PendingVacateRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *RoommateHandler) MarkVacateRead(w http.ResponseWriter, r *http.Request) {
	vacateRequestID, err := pathInt(r, "vacateRequestId")
	if err != nil {
		http.Error(w, "invalid vacate request id", http.StatusBadRequest)
		return
	}

	if err := h.roommateService.MarkVacateRead(r.Context(), vacateRequestID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Marked as Read")
}

func (h *RoommateHandler) Sort(w http.ResponseWriter, r *http.Request) {
	req := pageRequest(r)

	var rentStatus *domain.RentStatus
	if raw := r.URL.Query().Get("rentStatus"); raw != "" {
		status := domain.RentStatus(raw)
		rentStatus = &status
	}

	page, err := h.roommateService.SortRoommates(r.Context(), req, rentStatus)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
