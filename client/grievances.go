package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/sharespace/sharespace-service/internal/core/domain"
)

func (c *Client) RaiseGrievance(ctx context.Context, roommateID int, grievance domain.Grievance) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetBody(grievance).SetResult(&result)
	if err := execute(req, resty.MethodPost, fmt.Sprintf("/grievance/raise/%d", roommateID)); err != nil {
		return "", err
	}
	return result.Message, nil
}

func (c *Client) PendingGrievances(ctx context.Context) ([]domain.Grievance, error) {
	var grievances []domain.Grievance
	req := c.request(ctx).SetResult(&grievances)
	if err := execute(req, resty.MethodGet, "/grievance/pending-grievance"); err != nil {
		return nil, err
	}
	return grievances, nil
}

func (c *Client) MarkGrievanceRead(ctx context.Context, grievanceID int) (string, error) {
	var result apiResponse
	req := c.request(ctx).SetResult(&result)
	if err := execute(req, resty.MethodPost, fmt.Sprintf("/grievance/mark-as-read/%d", grievanceID)); err != nil {
		return "", err
	}
	return result.Message, nil
}
