package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

// APIResponse is the envelope returned for business failures and for
// endpoints whose result is a plain status message.
type APIResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Message: message, Status: true})
}

// writeError maps business rule violations to 400 with the message envelope
// and everything else to an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	if domain.IsBusinessError(err) {
		writeJSON(w, http.StatusBadRequest, APIResponse{Message: err.Error(), Status: false})
		return
	}
	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, APIResponse{Message: "Internal server error", Status: false})
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}

// pageRequest parses the shared pagination query parameters.
func pageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	return domain.PageRequest{
		Page:      page,
		Limit:     limit,
		SortField: q.Get("sortField"),
		SortOrder: q.Get("sortOrder"),
	}
}
