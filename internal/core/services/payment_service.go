package services

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

const rentCurrency = "INR"

type PaymentService struct {
	roommateRepo ports.RoommateRepository
	paymentRepo  ports.PaymentRepository
	gateway      ports.PaymentGateway
	logger       *zap.Logger
}

var _ ports.PaymentService = (*PaymentService)(nil)

func NewPaymentService(roommateRepo ports.RoommateRepository, paymentRepo ports.PaymentRepository, gateway ports.PaymentGateway, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		roommateRepo: roommateRepo,
		paymentRepo:  paymentRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (s *PaymentService) PayRent(ctx context.Context, username string) (*domain.PaymentCallbackRequest, error) {
	if username == "" {
		return nil, domain.BusinessErrorf("Username cannot be null or empty")
	}
	roommate, err := s.roommateRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if roommate == nil {
		return nil, domain.BusinessErrorf(fmt.Sprintf("No User found under this name : %s", username))
	}

	order, err := s.gateway.CreateOrder(ctx, roommate.RentAmount, rentCurrency, roommate.Username)
	if err != nil {
		return nil, err
	}

	// The payment is recorded as failed until the gateway confirms it
	// through the callback.
	payment := &domain.Payment{
		Amount:        order.Amount,
		PaymentStatus: domain.PaymentFailed,
		PaymentDate:   domain.Today(),
		TransactionID: order.ID,
		PaymentMethod: order.Entity,
		Username:      roommate.Username,
		RoomNumber:    roommate.RoomNumber,
		RoommateID:    roommate.RoommateID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	roommate.RentStatus = domain.RentPaymentCreated
	if err := s.roommateRepo.Update(ctx, roommate); err != nil {
		return nil, err
	}

	s.logger.Info("payment order created",
		zap.String("username", username),
		zap.String("order_id", order.ID),
	)

	return &domain.PaymentCallbackRequest{
		OrderID: order.ID,
		Amount:  order.Amount,
		Email:   roommate.Email,
	}, nil
}

func (s *PaymentService) ConfirmPayment(ctx context.Context, req domain.PaymentCallbackRequest) (string, error) {
	gatewayPayment, err := s.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		return "", err
	}
	// Trust the gateway's record, not the widget callback: the payment
	// must belong to the order this flow started with.
	if gatewayPayment.OrderID != req.OrderID {
		return "", domain.BusinessErrorf("Payment was not Processed with correct Order Id")
	}

	payment, err := s.paymentRepo.FindByTransactionID(ctx, req.OrderID)
	if err != nil {
		return "", err
	}
	if payment == nil {
		return "", domain.BusinessErrorf("Payment not found")
	}

	roommate, err := s.roommateRepo.FindByUsername(ctx, payment.Username)
	if err != nil {
		return "", err
	}
	if roommate == nil {
		return "", domain.BusinessErrorf(fmt.Sprintf("No User found under this name : %s", payment.Username))
	}

	roommate.RentStatus = domain.RentPaymentDone
	if err := s.roommateRepo.Update(ctx, roommate); err != nil {
		return "", err
	}

	payment.PaymentStatus = domain.PaymentDone
	payment.TransactionID = req.PaymentID
	payment.PaymentMethod = gatewayPayment.Method
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return "", err
	}

	s.logger.Info("payment confirmed",
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
	)
	return "Payment completed Successfully", nil
}

func (s *PaymentService) GetAllPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, domain.BusinessErrorf("No Payments have been done so far")
	}
	s.logger.Info("fetched payments", zap.Int("count", len(payments)))
	return payments, nil
}

func (s *PaymentService) SortPayments(ctx context.Context, req domain.PageRequest, paymentDate *domain.Date) (domain.Page[domain.Payment], error) {
	page, err := s.paymentRepo.FindPage(ctx, req, paymentDate)
	if err != nil {
		return page, err
	}
	if len(page.Content) == 0 {
		return page, domain.BusinessErrorf("No Payment available")
	}
	return page, nil
}

// SearchPayments matches room numbers for short queries and usernames
// otherwise, bypassing pagination entirely.
func (s *PaymentService) SearchPayments(ctx context.Context, query string) ([]domain.Payment, error) {
	var payments []domain.Payment
	var err error
	if len(query) < 3 {
		payments, err = s.paymentRepo.SearchByRoomNumber(ctx, query)
	} else {
		payments, err = s.paymentRepo.SearchByUsername(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, domain.BusinessErrorf(fmt.Sprintf("No Payments available under - %s", query))
	}
	s.logger.Info("payment search", zap.String("query", query), zap.Int("count", len(payments)))
	return payments, nil
}

func (s *PaymentService) ExportPayments(ctx context.Context, w io.Writer) error {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return domain.BusinessErrorf("No Payments have been done so far")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payments"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Username", "Room", "Amount", "Status", "Date", "Method", "Transaction"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range payments {
		values := []any{p.ID, p.Username, p.RoomNumber, p.Amount, string(p.PaymentStatus), p.PaymentDate.String(), p.PaymentMethod, p.TransactionID}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	s.logger.Info("exported payment report", zap.Int("rows", len(payments)))
	return f.Write(w)
}
