package utils

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// BookingCodePrefix starts every customer-facing booking code.
const BookingCodePrefix = "CB"

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateBookingCode creates a booking code at the given instant.
// Format: CB + unix milliseconds + random 0-999 (no padding).
func GenerateBookingCode(now time.Time) string {
	return fmt.Sprintf("%s%d%d", BookingCodePrefix, now.UnixMilli(), rand.IntN(1000))
}
