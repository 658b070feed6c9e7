package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) PayRent(w http.ResponseWriter, r *http.Request) {
	var req domain.PayRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	order, err := h.paymentService.PayRent(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *PaymentHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	message, err := h.paymentService.ConfirmPayment(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, message)
}

func (h *PaymentHandler) PaymentDetails(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.GetAllPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) Sort(w http.ResponseWriter, r *http.Request) {
	req := pageRequest(r)

	var paymentDate *domain.Date
	if raw := r.URL.Query().Get("paymentDate"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			http.Error(w, "invalid payment date", http.StatusBadRequest)
			return
		}
		paymentDate = &date
	}

	page, err := h.paymentService.SortPayments(r.Context(), req, paymentDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *PaymentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.PathValue("query")
	if query == "" {
		http.Error(w, "invalid search query", http.StatusBadRequest)
		return
	}

	payments, err := h.paymentService.SearchPayments(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// Export streams the payment report as a spreadsheet download.
func (h *PaymentHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="payments.xlsx"`)

	if err := h.paymentService.ExportPayments(r.Context(), w); err != nil {
		// Headers may already be out; reset what we can for the error body.
		w.Header().Del("Content-Disposition")
		writeError(w, err)
	}
}
