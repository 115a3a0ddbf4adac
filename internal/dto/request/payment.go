package request

type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CheckoutRequest carries the confirmed intent and the booking it pays for
type CheckoutRequest struct {
	PaymentIntentID string               `json:"paymentIntentId" validate:"required,max=255"`
	Booking         CreateBookingRequest `json:"booking"`
}
