package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

type PaymentSQLRepository struct {
	db *sql.DB
}

var _ ports.PaymentRepository = (*PaymentSQLRepository)(nil)

func NewPaymentSQLRepository(db *sql.DB) *PaymentSQLRepository {
	return &PaymentSQLRepository{db: db}
}

const paymentColumns = "payment_id, amount, payment_status, payment_date, transaction_id, payment_method, username, room_number, roommate_id"

var paymentSortColumns = map[string]string{
	"username":      "username",
	"amount":        "amount",
	"paymentStatus": "payment_status",
	"paymentDate":   "payment_date",
	"paymentMethod": "payment_method",
	"roomNumber":    "room_number",
}

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	var roommateID sql.NullInt64
	err := row.Scan(
		&p.ID,
		&p.Amount,
		&p.PaymentStatus,
		&p.PaymentDate,
		&p.TransactionID,
		&p.PaymentMethod,
		&p.Username,
		&p.RoomNumber,
		&roommateID,
	)
	if err != nil {
		return nil, err
	}
	p.RoommateID = int(roommateID.Int64)
	return &p, nil
}

func (r *PaymentSQLRepository) Create(ctx context.Context, payment *domain.Payment) error {
	var roommateID any
	if payment.RoommateID != 0 {
		roommateID = payment.RoommateID
	}
	return r.db.QueryRowContext(ctx,
		`INSERT INTO payments (amount, payment_status, payment_date, transaction_id, payment_method, username, room_number, roommate_id)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING payment_id`,
		payment.Amount,
		payment.PaymentStatus,
		payment.PaymentDate,
		payment.TransactionID,
		payment.PaymentMethod,
		payment.Username,
		payment.RoomNumber,
		roommateID,
	).Scan(&payment.ID)
}

func (r *PaymentSQLRepository) Update(ctx context.Context, payment *domain.Payment) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE payments
         SET amount = $1, payment_status = $2, payment_date = $3, transaction_id = $4, payment_method = $5
         WHERE payment_id = $6`,
		payment.Amount,
		payment.PaymentStatus,
		payment.PaymentDate,
		payment.TransactionID,
		payment.PaymentMethod,
		payment.ID,
	)
	return err
}

func (r *PaymentSQLRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+paymentColumns+" FROM payments ORDER BY payment_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *PaymentSQLRepository) FindByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE transaction_id = $1", transactionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PaymentSQLRepository) FindPage(ctx context.Context, req domain.PageRequest, paymentDate *domain.Date) (domain.Page[domain.Payment], error) {
	var empty domain.Page[domain.Payment]

	column, ok := paymentSortColumns[req.SortField]
	if !ok {
		column = "username"
	}
	direction := "ASC"
	if req.Descending() {
		direction = "DESC"
	}

	where := ""
	args := []any{req.Limit, req.Offset()}
	if paymentDate != nil {
		where = "WHERE payment_date = $3"
		args = append(args, *paymentDate)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM payments %s ORDER BY %s %s LIMIT $1 OFFSET $2",
		paymentColumns, where, column, direction)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return empty, err
	}
	defer rows.Close()

	content := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return empty, err
		}
		content = append(content, *p)
	}
	if err := rows.Err(); err != nil {
		return empty, err
	}

	var total int64
	if paymentDate != nil {
		err = r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM payments WHERE payment_date = $1", *paymentDate).Scan(&total)
	} else {
		err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM payments").Scan(&total)
	}
	if err != nil {
		return empty, err
	}

	return domain.NewPage(content, total, req.Page, req.Limit), nil
}

func (r *PaymentSQLRepository) SearchByUsername(ctx context.Context, username string) ([]domain.Payment, error) {
	return r.search(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE LOWER(username) LIKE LOWER($1) ORDER BY payment_date DESC",
		username+"%")
}

func (r *PaymentSQLRepository) SearchByRoomNumber(ctx context.Context, roomNumber string) ([]domain.Payment, error) {
	return r.search(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE LOWER(room_number) LIKE LOWER($1) ORDER BY payment_date DESC",
		roomNumber+"%")
}

func (r *PaymentSQLRepository) search(ctx context.Context, query, arg string) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
