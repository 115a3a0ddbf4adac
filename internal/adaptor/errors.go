package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgInternalError    = "Internal server error"
	msgChargedNotBooked = "Payment successful but booking failed"
	msgInvalidBody      = "Invalid request body"
	msgValidationFailed = "Validation failed"
	msgAuthRequired     = "Authentication required"

	maxRequestBodyBytes = 1 << 20
)

// handleServiceError maps service errors onto the response envelope.
// ErrChargedNotBooked wraps the booking error, so it is checked first.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrChargedNotBooked):
		log.Error("Charged but not booked", zap.String("operation", operation), zap.Error(err))
		utils.ResponseInternalError(w, msgChargedNotBooked)
	case errors.As(err, &validationErr):
		utils.ResponseBadRequest(w, msgValidationFailed, validationErr.Fields)
	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, notFoundMessage(operation))
	case errors.Is(err, usecase.ErrUnauthorized):
		utils.ResponseUnauthorized(w, "Invalid credentials")
	case errors.Is(err, usecase.ErrConflict):
		log.Warn("Conflict", zap.String("operation", operation), zap.Error(err))
		utils.ResponseConflict(w, conflictMessage(operation))
	case errors.Is(err, usecase.ErrPaymentFailed):
		log.Warn("Payment failed", zap.String("operation", operation), zap.Error(err))
		utils.ResponsePaymentRequired(w, "Payment was not completed")
	default:
		log.Error("Request failed", zap.String("operation", operation), zap.Error(err))
		utils.ResponseInternalError(w, msgInternalError)
	}
}

func notFoundMessage(operation string) string {
	switch operation {
	case "get movie", "update movie", "create booking":
		return "Movie not found"
	case "get booking", "cancel booking":
		return "Booking not found"
	case "checkout":
		return "Payment not found"
	case "get profile":
		return "User not found"
	default:
		return "Resource not found"
	}
}

func conflictMessage(operation string) string {
	switch operation {
	case "register":
		return "Email already registered"
	case "cancel booking":
		return "Booking already cancelled"
	case "checkout":
		return "Payment already used for a booking"
	default:
		return "Conflict"
	}
}

// decodeJSON reads a bounded JSON body into dst, writing a 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, msgInvalidBody, nil)
		return false
	}
	return true
}
