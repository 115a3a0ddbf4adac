package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error)
	Checkout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.BookingResponse, error)
}

type paymentService struct {
	payments repository.PaymentRepository
	bookings BookingService
	gateway  payment.Gateway
	currency string
	log      *zap.Logger
}

func NewPaymentService(
	payments repository.PaymentRepository,
	bookings BookingService,
	gateway payment.Gateway,
	currency string,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		payments: payments,
		bookings: bookings,
		gateway:  gateway,
		currency: currency,
		log:      log.With(zap.String("service", "payment")),
	}
}

// CreatePaymentIntent opens an intent with the processor and records it as pending
func (s *paymentService) CreatePaymentIntent(ctx context.Context, userID uuid.UUID, req *request.CreatePaymentIntentRequest) (*response.PaymentIntentResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, &payment.IntentRequest{
		Amount:   req.Amount,
		Currency: s.currency,
		Metadata: map[string]string{"user_id": userID.String()},
	})
	if err != nil {
		s.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("create payment intent: %v: %w", err, ErrPaymentFailed)
	}

	now := time.Now()
	record := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   userID,
		IntentID: intent.ID,
		Gateway:  s.gateway.Name(),
		Amount:   req.Amount,
		Currency: s.currency,
		Status:   entity.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("record payment intent: %w", err)
	}

	s.log.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.String("user_id", userID.String()),
		zap.Float64("amount", req.Amount),
	)

	return &response.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          req.Amount,
		Currency:        s.currency,
	}, nil
}

// Checkout books the seats for a confirmed intent. A booking is only attempted
// when the processor reports the charge as succeeded.
func (s *paymentService) Checkout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// 1. The intent must have been opened by this user and not used yet
	record, err := s.payments.FindByIntentID(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}
	if record == nil || record.UserID != userID {
		return nil, fmt.Errorf("payment intent %s: %w", req.PaymentIntentID, ErrNotFound)
	}
	if record.BookingID != nil || record.Status == entity.PaymentStatusCompleted {
		return nil, fmt.Errorf("payment intent %s already used: %w", req.PaymentIntentID, ErrConflict)
	}

	// 2. Confirm the charge with the processor
	intent, err := s.gateway.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		s.log.Error("Failed to retrieve payment intent",
			zap.Error(err),
			zap.String("intent_id", req.PaymentIntentID),
		)
		return nil, fmt.Errorf("retrieve payment intent: %v: %w", err, ErrPaymentFailed)
	}
	if !intent.Succeeded() {
		s.log.Warn("Payment not completed",
			zap.String("intent_id", intent.ID),
			zap.String("status", intent.Status),
		)
		if err := s.payments.UpdateStatus(ctx, record.ID, entity.PaymentStatusFailed, nil); err != nil {
			s.log.Error("Failed to mark payment failed", zap.Error(err), zap.String("intent_id", intent.ID))
		}
		return nil, fmt.Errorf("payment intent %s is %s: %w", intent.ID, intent.Status, ErrPaymentFailed)
	}

	// 3. Claim the charge; a concurrent checkout for the same intent loses here
	claimed, err := s.payments.Claim(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("claim payment: %w", err)
	}
	if !claimed {
		return nil, fmt.Errorf("payment intent %s already used: %w", req.PaymentIntentID, ErrConflict)
	}

	// 4. Book
	method := s.gateway.Name()
	bookingReq := req.Booking
	bookingReq.PaymentMethod = &method

	booking, err := s.bookings.CreateBooking(ctx, userID, &bookingReq)
	if err != nil {
		s.log.Error("Charged but booking failed",
			zap.Error(err),
			zap.String("intent_id", intent.ID),
			zap.String("user_id", userID.String()),
			zap.Float64("amount", intent.Amount),
		)
		return nil, errors.Join(ErrChargedNotBooked, err)
	}

	if math.Abs(booking.TotalAmount-intent.Amount) >= 0.01 {
		s.log.Warn("Charged amount differs from booking total",
			zap.String("intent_id", intent.ID),
			zap.String("booking_code", booking.BookingID),
			zap.Float64("charged", intent.Amount),
			zap.Float64("total", booking.TotalAmount),
		)
	}

	// 5. Link the booking to the charge
	bookingID, err := uuid.Parse(booking.ID)
	if err == nil {
		err = s.payments.UpdateStatus(ctx, record.ID, entity.PaymentStatusCompleted, &bookingID)
	}
	if err != nil {
		s.log.Error("Failed to link payment to booking",
			zap.Error(err),
			zap.String("intent_id", intent.ID),
			zap.String("booking_code", booking.BookingID),
		)
	}

	return booking, nil
}
