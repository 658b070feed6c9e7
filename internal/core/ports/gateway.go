package ports

import "context"

// GatewayOrder is a checkout order created with the payment provider.
type GatewayOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Entity   string  `json:"entity"`
}

// GatewayPayment is a settled payment fetched from the provider.
type GatewayPayment struct {
	ID      string  `json:"id"`
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
}

// PaymentGateway is the third-party checkout provider. Amounts are in
// currency units; the adapter converts to the provider's subunits.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*GatewayOrder, error)
	FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error)
}
