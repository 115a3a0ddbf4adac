package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment tracks one payment intent opened with the external processor.
// BookingID stays nil until a booking is created for the charge.
type Payment struct {
	Base
	UserID    uuid.UUID     `db:"user_id"`
	IntentID  string        `db:"intent_id"`
	Gateway   string        `db:"gateway"`
	Amount    float64       `db:"amount"`
	Currency  string        `db:"currency"`
	Status    PaymentStatus `db:"status"`
	BookingID *uuid.UUID    `db:"booking_id"`
}
