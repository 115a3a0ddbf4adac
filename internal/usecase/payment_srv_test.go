package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paymentFixture struct {
	payments *MockPaymentRepository
	bookings *MockBookingService
	gateway  *MockGateway
	svc      PaymentService
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		payments: new(MockPaymentRepository),
		bookings: new(MockBookingService),
		gateway:  new(MockGateway),
	}
	f.gateway.On("Name").Return("stripe").Maybe()
	f.svc = NewPaymentService(f.payments, f.bookings, f.gateway, "inr", zap.NewNop())
	return f
}

func checkoutRequest(intentID string) *request.CheckoutRequest {
	return &request.CheckoutRequest{
		PaymentIntentID: intentID,
		Booking:         *validBookingRequest(uuid.New()),
	}
}

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()

	f.gateway.On("CreatePaymentIntent", mock.Anything, &payment.IntentRequest{
		Amount:   261,
		Currency: "inr",
		Metadata: map[string]string{"user_id": userID.String()},
	}).Return(&payment.Intent{ID: "pi_123", ClientSecret: "pi_123_secret", Status: payment.StatusRequiresPaymentMethod, Amount: 261, Currency: "inr"}, nil)
	f.payments.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.UserID == userID &&
			p.IntentID == "pi_123" &&
			p.Gateway == "stripe" &&
			p.Status == entity.PaymentStatusPending &&
			p.BookingID == nil
	})).Return(nil)

	resp, err := f.svc.CreatePaymentIntent(context.Background(), userID, &request.CreatePaymentIntentRequest{Amount: 261})

	require.NoError(t, err)
	assert.Equal(t, &response.PaymentIntentResponse{
		ClientSecret:    "pi_123_secret",
		PaymentIntentID: "pi_123",
		Amount:          261,
		Currency:        "inr",
	}, resp)
	f.payments.AssertExpectations(t)
}

func TestPaymentService_CreatePaymentIntent_InvalidAmount(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.svc.CreatePaymentIntent(context.Background(), uuid.New(), &request.CreatePaymentIntentRequest{Amount: -5})

	assert.ErrorIs(t, err, ErrValidation)
	f.gateway.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything)
}

func TestPaymentService_CreatePaymentIntent_GatewayError(t *testing.T) {
	f := newPaymentFixture()
	f.gateway.On("CreatePaymentIntent", mock.Anything, mock.Anything).Return(nil, errors.New("card network down"))

	_, err := f.svc.CreatePaymentIntent(context.Background(), uuid.New(), &request.CreatePaymentIntentRequest{Amount: 100})

	assert.ErrorIs(t, err, ErrPaymentFailed)
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_Success(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()
	paymentID := uuid.New()
	bookingID := uuid.New()

	f.payments.On("FindByIntentID", mock.Anything, "pi_ok").Return(&entity.Payment{
		Base:     entity.Base{ID: paymentID},
		UserID:   userID,
		IntentID: "pi_ok",
		Status:   entity.PaymentStatusPending,
	}, nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_ok").Return(&payment.Intent{ID: "pi_ok", Status: payment.StatusSucceeded, Amount: 261}, nil)
	f.bookings.On("CreateBooking", mock.Anything, userID, mock.MatchedBy(func(req *request.CreateBookingRequest) bool {
		return req.PaymentMethod != nil && *req.PaymentMethod == "stripe"
	})).Return(&response.BookingResponse{ID: bookingID.String(), BookingID: "CB1", TotalAmount: 261}, nil)
	f.payments.On("Claim", mock.Anything, paymentID).Return(true, nil)
	f.payments.On("UpdateStatus", mock.Anything, paymentID, entity.PaymentStatusCompleted, &bookingID).Return(nil)

	resp, err := f.svc.Checkout(context.Background(), userID, checkoutRequest("pi_ok"))

	require.NoError(t, err)
	assert.Equal(t, "CB1", resp.BookingID)
	f.payments.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
}

func TestPaymentService_Checkout_NotSucceeded(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()
	paymentID := uuid.New()

	f.payments.On("FindByIntentID", mock.Anything, "pi_pending").Return(&entity.Payment{
		Base:   entity.Base{ID: paymentID},
		UserID: userID,
	}, nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_pending").Return(&payment.Intent{ID: "pi_pending", Status: payment.StatusRequiresPaymentMethod}, nil)
	f.payments.On("UpdateStatus", mock.Anything, paymentID, entity.PaymentStatusFailed, (*uuid.UUID)(nil)).Return(nil)

	resp, err := f.svc.Checkout(context.Background(), userID, checkoutRequest("pi_pending"))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPaymentFailed)
	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	f.payments.AssertExpectations(t)
}

func TestPaymentService_Checkout_BookingFailsAfterCharge(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()
	paymentID := uuid.New()

	f.payments.On("FindByIntentID", mock.Anything, "pi_charged").Return(&entity.Payment{
		Base:   entity.Base{ID: paymentID},
		UserID: userID,
	}, nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_charged").Return(&payment.Intent{ID: "pi_charged", Status: payment.StatusSucceeded, Amount: 261}, nil)
	f.payments.On("Claim", mock.Anything, paymentID).Return(true, nil)
	f.bookings.On("CreateBooking", mock.Anything, userID, mock.Anything).Return(nil, ErrNotFound)

	_, err := f.svc.Checkout(context.Background(), userID, checkoutRequest("pi_charged"))

	assert.ErrorIs(t, err, ErrChargedNotBooked)
	assert.ErrorIs(t, err, ErrNotFound)
	f.payments.AssertExpectations(t)
	f.payments.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_LosesClaimRace(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()
	paymentID := uuid.New()

	f.payments.On("FindByIntentID", mock.Anything, "pi_race").Return(&entity.Payment{
		Base:   entity.Base{ID: paymentID},
		UserID: userID,
		Status: entity.PaymentStatusPending,
	}, nil)
	f.gateway.On("GetPaymentIntent", mock.Anything, "pi_race").Return(&payment.Intent{ID: "pi_race", Status: payment.StatusSucceeded, Amount: 261}, nil)
	f.payments.On("Claim", mock.Anything, paymentID).Return(false, nil)

	resp, err := f.svc.Checkout(context.Background(), userID, checkoutRequest("pi_race"))

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrConflict)
	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_CompletedWithoutBooking(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()

	f.payments.On("FindByIntentID", mock.Anything, "pi_done").Return(&entity.Payment{
		Base:   entity.Base{ID: uuid.New()},
		UserID: userID,
		Status: entity.PaymentStatusCompleted,
	}, nil)

	_, err := f.svc.Checkout(context.Background(), userID, checkoutRequest("pi_done"))

	assert.ErrorIs(t, err, ErrConflict)
	f.gateway.AssertNotCalled(t, "GetPaymentIntent", mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_ForeignIntent(t *testing.T) {
	f := newPaymentFixture()

	f.payments.On("FindByIntentID", mock.Anything, "pi_other").Return(&entity.Payment{
		Base:   entity.Base{ID: uuid.New()},
		UserID: uuid.New(),
	}, nil)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), checkoutRequest("pi_other"))

	assert.ErrorIs(t, err, ErrNotFound)
	f.gateway.AssertNotCalled(t, "GetPaymentIntent", mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_UnknownIntent(t *testing.T) {
	f := newPaymentFixture()
	f.payments.On("FindByIntentID", mock.Anything, "pi_missing").Return(nil, nil)

	_, err := f.svc.Checkout(context.Background(), uuid.New(), checkoutRequest("pi_missing"))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPaymentService_Checkout_IntentAlreadyUsed(t *testing.T) {
	f := newPaymentFixture()
	userID := uuid.New()
	linked := uuid.New()

	f.payments.On("FindByIntentID", mock.Anything, "pi_used").Return(&entity.Payment{
		Base:      entity.Base{ID: uuid.New()},
		UserID:    userID,
		BookingID: &linked,
	}, nil)

	_, err := f.svc.Checkout(context.Background(), userID, checkoutRequest("pi_used"))

	assert.ErrorIs(t, err, ErrConflict)
	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Checkout_WithMockGateway(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingService)
	gateway := payment.NewMockGateway()
	svc := NewPaymentService(payments, bookings, gateway, "inr", zap.NewNop())
	userID := uuid.New()

	var recorded *entity.Payment
	payments.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(*entity.Payment)
	}).Return(nil)

	intent, err := svc.CreatePaymentIntent(context.Background(), userID, &request.CreatePaymentIntentRequest{Amount: 500})
	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, "mock", recorded.Gateway)

	bookingID := uuid.New()
	payments.On("FindByIntentID", mock.Anything, intent.PaymentIntentID).Return(recorded, nil)
	payments.On("Claim", mock.Anything, recorded.ID).Return(true, nil)
	bookings.On("CreateBooking", mock.Anything, userID, mock.Anything).Return(&response.BookingResponse{ID: bookingID.String(), TotalAmount: 500}, nil)
	payments.On("UpdateStatus", mock.Anything, recorded.ID, entity.PaymentStatusCompleted, &bookingID).Return(nil)

	_, err = svc.Checkout(context.Background(), userID, checkoutRequest(intent.PaymentIntentID))

	require.NoError(t, err)
	payments.AssertExpectations(t)
}
