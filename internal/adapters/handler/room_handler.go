package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type RoomHandler struct {
	roomService ports.RoomService
}

func NewRoomHandler(roomService ports.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

func (h *RoomHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.GetAllRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathInt(r, "roomId")
	if err != nil {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return
	}

	room, err := h.roomService.GetRoom(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req domain.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	rooms, err := h.roomService.CheckAvailability(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) BookRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathInt(r, "roomId")
	if err != nil {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return
	}

	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	roommate, err := h.roomService.BookRoom(r.Context(), roomID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, roommate)
}

func (h *RoomHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var room domain.Room
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	message, err := h.roomService.AddRoom(r.Context(), &room)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusCreated, message)
}

func (h *RoomHandler) EditRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathInt(r, "roomId")
	if err != nil {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return
	}

	var update domain.RoomUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	room, err := h.roomService.EditRoom(r.Context(), roomID, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathInt(r, "roomId")
	if err != nil {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return
	}

	message, err := h.roomService.DeleteRoom(r.Context(), roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, message)
}
