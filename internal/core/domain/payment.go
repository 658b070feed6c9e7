package domain

type PaymentStatus string

const (
	PaymentFailed PaymentStatus = "PAYMENT_FAILED"
	PaymentDone   PaymentStatus = "PAYMENT_DONE"
)

type Payment struct {
	ID            int64         `json:"id"`
	Amount        float64       `json:"amount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentDate   Date          `json:"paymentDate"`
	TransactionID string        `json:"transactionId"`
	PaymentMethod string        `json:"paymentMethod"`
	Username      string        `json:"username"`
	RoomNumber    string        `json:"roomNumber"`
	RoommateID    int           `json:"-"`
}

// PayRentRequest identifies whose rent is being paid.
type PayRentRequest struct {
	Username string `json:"username"`
}

// PaymentCallbackRequest is exchanged with the checkout widget: the payrent
// endpoint fills OrderID/Amount/Email, and the widget's completion callback
// sends it back with the gateway PaymentID.
type PaymentCallbackRequest struct {
	PaymentID string  `json:"paymentId"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Email     string  `json:"email"`
}
