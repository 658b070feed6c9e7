package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

// RoommateLoginResponse mirrors the roommate login endpoint body.
type RoommateLoginResponse struct {
	Token    string           `json:"token"`
	Roommate *domain.Roommate `json:"roommate"`
}

// RoommateLogin authenticates a roommate, stores the session token and
// returns the full profile.
func (c *Client) RoommateLogin(ctx context.Context, req domain.LoginRequest) (*domain.Roommate, error) {
	var result RoommateLoginResponse
	request := c.request(ctx).SetBody(req).SetResult(&result)
	if err := execute(request, resty.MethodPost, "/roommate/get-roommate"); err != nil {
		return nil, err
	}
	c.setToken(result.Token)
	return result.Roommate, nil
}

func (c *Client) GetAllRoommates(ctx context.Context) ([]domain.Roommate, error) {
	var roommates []domain.Roommate
	req := c.request(ctx).SetResult(&roommates)
	if err := execute(req, resty.MethodGet, "/roommate/all-roommates"); err != nil {
		return nil, err
	}
	return roommates, nil
}

func (c *Client) UpdateDetails(ctx context.Context, roommateID int, update domain.UpdateDetails) (*domain.Roommate, error) {
	var roommate domain.Roommate
	req := c.request(ctx).SetBody(update).SetResult(&roommate)
	if err := execute(req, resty.MethodPatch, fmt.Sprintf("/roommate/update-details/%d", roommateID)); err != nil {
		return nil, err
	}
	return &roommate, nil
}

func (c *Client) Vacate(ctx context.Context, username string) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodDelete, "/roommate/vacate/"+username); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) SendVacateRequest(ctx context.Context, roommateID int, request domain.VacateRequest) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetBody(request).SetResult(&result)
	if err := execute(req, resty.MethodPost, fmt.Sprintf("/roommate/send-vacate-request/%d", roommateID)); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) PendingVacateRequests(ctx context.Context) ([]domain.VacateRequest, error) {
	var requests []domain.VacateRequest
	req := c.request(ctx).SetResult(&requests)
	if err := execute(req, resty.MethodGet, "/roommate/pending-vacate-request"); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) MarkVacateRead(ctx context.Context, vacateRequestID int) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodPut, fmt.Sprintf("/roommate/mark-read/%d", vacateRequestID)); err != nil {
		return "", err
	}
	return result.Message, nil
}

// SortRoommates fetches one page of roommates; rentStatus is an optional
// filter.
func (c *Client) SortRoommates(ctx context.Context, page domain.PageRequest, rentStatus *domain.RentStatus) (domain.Page[domain.Roommate], error) {
	var result domain.Page[domain.Roommate]
	req := c.request(ctx).
		SetQueryParams(pageParams(page)).
		SetResult(&result)
	if rentStatus != nil {
		req.SetQueryParam("rentStatus", string(*rentStatus))
	}
	if err := execute(req, resty.MethodPost, "/roommate/sort"); err != nil {
		return result, err
	}
	return result, nil
}

func pageParams(page domain.PageRequest) map[string]string {
	return map[string]string{
		"page":      strconv.Itoa(page.Page),
		"limit":     strconv.Itoa(page.Limit),
		"sortField": page.SortField,
		"sortOrder": page.SortOrder,
	}
}
