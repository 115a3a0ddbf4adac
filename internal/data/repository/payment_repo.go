package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByIntentID(ctx context.Context, intentID string) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, bookingID *uuid.UUID) error
	Claim(ctx context.Context, paymentID uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) error
}

type paymentRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewPaymentRepository(db database.DBTX, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, intent_id, gateway, amount, currency, status, booking_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.UserID,
		payment.IntentID,
		payment.Gateway,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.BookingID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("intent_id", payment.IntentID),
			zap.String("user_id", payment.UserID.String()),
		)
		return fmt.Errorf("create payment for intent %s: %w", payment.IntentID, err)
	}

	return nil
}

func (r *paymentRepository) FindByIntentID(ctx context.Context, intentID string) (*entity.Payment, error) {
	query := `
		SELECT id, user_id, intent_id, gateway, amount, currency, status, booking_id, created_at, updated_at
		FROM payments
		WHERE intent_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, intentID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.IntentID,
		&payment.Gateway,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.BookingID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by intent",
			zap.Error(err),
			zap.String("intent_id", intentID),
		)
		return nil, fmt.Errorf("find payment for intent %s: %w", intentID, err)
	}

	return &payment, nil
}

// UpdateStatus sets the payment status and, when bookingID is not nil, links the booking
func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, bookingID *uuid.UUID) error {
	query := `
		UPDATE payments
		SET status = $2, booking_id = COALESCE($3, booking_id), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, paymentID, status, bookingID)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment status %s: %w", paymentID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", paymentID)
	}

	return nil
}

// Claim marks an unused payment completed. It reports false when another
// checkout already completed the payment, so one charge yields at most one booking.
func (r *paymentRepository) Claim(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status <> $2 AND booking_id IS NULL
	`

	result, err := r.db.Exec(ctx, query, paymentID, entity.PaymentStatusCompleted)
	if err != nil {
		r.log.Error("Failed to claim payment",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return false, fmt.Errorf("claim payment %s: %w", paymentID, err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *paymentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("delete payments: %w", err)
	}
	return nil
}
