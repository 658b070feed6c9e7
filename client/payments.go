package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

// PayRent opens a gateway order for the roommate's current rent. The
// returned descriptor feeds the checkout widget.
func (c *Client) PayRent(ctx context.Context, username string) (*domain.PaymentCallbackRequest, error) {
	var order domain.PaymentCallbackRequest
	req := c.request(ctx).
		SetBody(domain.PayRentRequest{Username: username}).
		SetResult(&order)
	if err := execute(req, resty.MethodPost, "/payments/payrent"); err != nil {
		return nil, err
	}
	return &order, nil
}

// PaymentCallback reports the checkout widget's completion back to the
// server for verification against the gateway.
func (c *Client) PaymentCallback(ctx context.Context, callback domain.PaymentCallbackRequest) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetBody(callback).SetResult(&result)
	if err := execute(req, resty.MethodPost, "/payments/paymentCallback"); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) PaymentDetails(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	req := c.request(ctx).SetResult(&payments)
	if err := execute(req, resty.MethodGet, "/payments/paymentDetails"); err != nil {
		return nil, err
	}
	return payments, nil
}

// SortPayments fetches one page of payments; paymentDate is an optional
// filter.
func (c *Client) SortPayments(ctx context.Context, page domain.PageRequest, paymentDate *domain.Date) (domain.Page[domain.Payment], error) {
	var result domain.Page[domain.Payment]
	req := c.request(ctx).
		SetQueryParams(pageParams(page)).
		SetResult(&result)
	if paymentDate != nil {
		req.SetQueryParam("paymentDate", paymentDate.String())
	}
	if err := execute(req, resty.MethodGet, "/payments/sort"); err != nil {
		return result, err
	}
	return result, nil
}

func (c *Client) SearchPayments(ctx context.Context, query string) ([]domain.Payment, error) {
	var payments []domain.Payment
	req := c.request(ctx).SetResult(&payments)
	if err := execute(req, resty.MethodGet, "/payments/search/"+query); err != nil {
		return nil, err
	}
	return payments, nil
}

// ExportPayments downloads the xlsx payment report.
func (c *Client) ExportPayments(ctx context.Context) ([]byte, error) {
	req := c.request(ctx)

	var apiErr apiResponse
	req.SetError(&apiErr)

	resp, err := req.Get("/payments/export")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		message := apiErr.Message
		if message == "" {
			message = resp.String()
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: message}
	}
	return resp.Body(), nil
}
