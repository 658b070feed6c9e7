package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type OwnerHandler struct {
	ownerService ports.OwnerService
}

func NewOwnerHandler(ownerService ports.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

type OwnerLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *OwnerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.OwnerLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	token, err := h.ownerService.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OwnerLoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}
