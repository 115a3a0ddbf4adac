package response

import (
	"encoding/json"
	"testing"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  PaginationMeta
	}{
		{name: "empty", page: 1, limit: 12, total: 0, want: PaginationMeta{Current: 1}},
		{name: "first of three", page: 1, limit: 12, total: 30, want: PaginationMeta{Current: 1, Pages: 3, Total: 30, HasNext: true}},
		{name: "last page", page: 3, limit: 12, total: 30, want: PaginationMeta{Current: 3, Pages: 3, Total: 30, HasPrev: true}},
		{name: "past the end", page: 5, limit: 12, total: 30, want: PaginationMeta{Current: 5, Pages: 3, Total: 30, HasPrev: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationMeta(tt.page, tt.limit, tt.total))
		})
	}
}

func TestBookingToResponse(t *testing.T) {
	method := "stripe"
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		BookingCode:   "CB1710410400000123",
		UserID:        uuid.New(),
		MovieID:       uuid.New(),
		MovieTitle:    "Dune",
		ShowDate:      time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		ShowTime:      "7:30 PM",
		Seats:         []entity.Seat{{SeatNumber: "A1", SeatType: entity.SeatTypePremium, Price: 400}},
		TotalAmount:   497,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusCompleted,
		PaymentMethod: &method,
		Movie:         &entity.BookingMovie{Title: "Dune", Poster: "https://example.com/d.jpg", Duration: 155},
	}

	list := BookingToResponse(booking, false)
	detail := BookingToResponse(booking, true)

	assert.Zero(t, list.Movie.Duration)
	assert.Equal(t, 155, detail.Movie.Duration)
	assert.Equal(t, booking.MovieID.String(), detail.Movie.ID)

	raw, err := json.Marshal(list)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "CB1710410400000123", wire["bookingId"])
	assert.Equal(t, "2025-03-20", wire["showDate"])
	assert.Equal(t, "stripe", wire["paymentMethod"])
	assert.NotContains(t, wire["movie"], "duration")
	assert.NotContains(t, wire["theater"], "name")
}

func TestMovieToResponse_FillsDefaults(t *testing.T) {
	resp := MovieToResponse(&entity.Movie{Base: entity.Base{ID: uuid.New()}, Title: "Old"})

	assert.Equal(t, []string{}, resp.Genre)
	assert.Equal(t, []string{}, resp.Language)
	assert.Equal(t, PricingResponse{Premium: 400, Regular: 280, Economy: 200}, resp.Pricing)
}
