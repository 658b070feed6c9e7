package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

// SendMail queues a rent reminder for every roommate.
func (c *Client) SendMail(ctx context.Context) (*domain.MailResponse, error) {
	var result domain.MailResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodGet, "/notification/send-mail"); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendRentPending queues reminders only for roommates whose rent is unpaid.
func (c *Client) SendRentPending(ctx context.Context) (*domain.MailResponse, error) {
	var result domain.MailResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodGet, "/notification/send-rent-pending"); err != nil {
		return nil, err
	}
	return &result, nil
}

// RunRentCycle triggers the monthly rent reset and reminder fan-out.
func (c *Client) RunRentCycle(ctx context.Context) (*domain.MailResponse, error) {
	var result domain.MailResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodGet, "/notification/load"); err != nil {
		return nil, err
	}
	return &result, nil
}
