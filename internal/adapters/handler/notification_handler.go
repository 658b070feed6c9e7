package handler

import (
	"net/http"

	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type NotificationHandler struct {
	notificationService ports.NotificationService
}

func NewNotificationHandler(notificationService ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	response, err := h.notificationService.SendMailToAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *NotificationHandler) SendRentPending(w http.ResponseWriter, r *http.Request) {
	response, err := h.notificationService.SendPendingMail(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// Load runs the monthly rent cycle and queues a reminder for every roommate.
func (h *NotificationHandler) Load(w http.ResponseWriter, r *http.Request) {
	response, err := h.notificationService.RunMonthlyRentCycle(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
