package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func (c *Client) GetAllRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	req := c.request(ctx).SetResult(&rooms)
	if err := execute(req, resty.MethodGet, "/room/all-rooms"); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *Client) GetRoom(ctx context.Context, roomID int) (*domain.Room, error) {
	var room domain.Room
	req := c.request(ctx).SetResult(&room)
	if err := execute(req, resty.MethodGet, fmt.Sprintf("/room/get-room/%d", roomID)); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) CheckAvailability(ctx context.Context, req domain.AvailabilityRequest) ([]domain.Room, error) {
	var rooms []domain.Room
	request := c.request(ctx).SetBody(req).SetResult(&rooms)
	if err := execute(request, resty.MethodPost, "/room/check-availability"); err != nil {
		return nil, err
	}
	return rooms, nil
}

// BookRoom signs up a new roommate into the given room. The required fields
// are checked locally first; an incomplete booking never reaches the network.
func (c *Client) BookRoom(ctx context.Context, roomID int, req domain.BookingRequest) (*domain.Roommate, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}

	var roommate domain.Roommate
	request := c.request(ctx).SetBody(req).SetResult(&roommate)
	if err := execute(request, resty.MethodPost, fmt.Sprintf("/room/book/%d", roomID)); err != nil {
		return nil, err
	}
	return &roommate, nil
}

func validateBooking(req domain.BookingRequest) error {
	switch {
	case req.Username == "":
		return errors.New("booking requires a username")
	case req.Email == "":
		return errors.New("booking requires an email")
	case req.Gender == "":
		return errors.New("booking requires a gender")
	case req.CheckInDate.IsZero():
		return errors.New("booking requires a check-in date")
	}
	return nil
}

func (c *Client) AddRoom(ctx context.Context, room domain.Room) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetBody(room).SetResult(&result)
	if err := execute(req, resty.MethodPost, "/room/add-room"); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) EditRoom(ctx context.Context, roomID int, update domain.RoomUpdate) (*domain.Room, error) {
	var room domain.Room
	req := c.request(ctx).SetBody(update).SetResult(&room)
	if err := execute(req, resty.MethodPatch, fmt.Sprintf("/room/edit-room/%d", roomID)); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *Client) DeleteRoom(ctx context.Context, roomID int) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodDelete, fmt.Sprintf("/room/delete-room/%d", roomID)); err != nil {
		return "", err
	}
	return result.Message, nil
}
