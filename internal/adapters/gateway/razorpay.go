package gateway

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/config"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

const requestTimeout = 15 * time.Second

// RazorpayGateway implements ports.PaymentGateway against the Razorpay
// orders API. Razorpay deals in subunits (paise for INR), so amounts are
// converted at the boundary.
type RazorpayGateway struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

var _ ports.PaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(baseURL, key, secret string, logger *zap.Logger) *RazorpayGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(key, secret).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")

	return &RazorpayGateway{
		client: client,
		cb:     config.NewCircuitBreaker("Payment-Gateway"),
		logger: logger,
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type paymentResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Method  string `json:"method"`
	Status  string `json:"status"`
}

type gatewayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*ports.GatewayOrder, error) {
	var order orderResponse
	var apiErr gatewayErrorResponse

	_, err := g.cb.Execute(func() (interface{}, error) {
		resp, err := g.client.R().
			SetContext(ctx).
			SetBody(orderRequest{
				Amount:   toSubunits(amount),
				Currency: currency,
				Receipt:  receipt,
			}).
			SetResult(&order).
			SetError(&apiErr).
			Post("/orders")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("gateway order create failed: %s (%s)", apiErr.Error.Description, resp.Status())
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	g.logger.Info("gateway order created", zap.String("order_id", order.ID))
	return &ports.GatewayOrder{
		ID:       order.ID,
		Amount:   fromSubunits(order.Amount),
		Currency: order.Currency,
		Entity:   order.Entity,
	}, nil
}

func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*ports.GatewayPayment, error) {
	var payment paymentResponse
	var apiErr gatewayErrorResponse

	_, err := g.cb.Execute(func() (interface{}, error) {
		resp, err := g.client.R().
			SetContext(ctx).
			SetResult(&payment).
			SetError(&apiErr).
			Get("/payments/" + paymentID)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("gateway payment fetch failed: %s (%s)", apiErr.Error.Description, resp.Status())
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	return &ports.GatewayPayment{
		ID:      payment.ID,
		OrderID: payment.OrderID,
		Amount:  fromSubunits(payment.Amount),
		Method:  payment.Method,
		Status:  payment.Status,
	}, nil
}

func toSubunits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromSubunits(amount int64) float64 {
	return float64(amount) / 100
}
