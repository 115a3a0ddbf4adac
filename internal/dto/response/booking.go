package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type SeatResponse struct {
	SeatNumber string          `json:"seatNumber"`
	SeatType   entity.SeatType `json:"seatType"`
	Price      float64         `json:"price"`
}

type TheaterResponse struct {
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
}

type BookingMovieResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Poster   string `json:"poster"`
	Duration int    `json:"duration,omitempty"`
}

type BookingResponse struct {
	ID            string                `json:"id"`
	BookingID     string                `json:"bookingId"`
	UserID        string                `json:"userId"`
	MovieID       string                `json:"movieId"`
	Movie         *BookingMovieResponse `json:"movie,omitempty"`
	MovieTitle    string                `json:"movieTitle"`
	ShowDate      string                `json:"showDate"`
	ShowTime      string                `json:"showTime"`
	Seats         []SeatResponse        `json:"seats"`
	TotalAmount   float64               `json:"totalAmount"`
	Status        entity.BookingStatus  `json:"status"`
	PaymentStatus entity.PaymentStatus  `json:"paymentStatus"`
	PaymentMethod *string               `json:"paymentMethod,omitempty"`
	Theater       TheaterResponse       `json:"theater"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// BookingToResponse converts a booking; withDuration controls whether the
// populated movie carries its running time (single booking view only).
func BookingToResponse(booking *entity.Booking, withDuration bool) BookingResponse {
	seats := make([]SeatResponse, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		seats = append(seats, SeatResponse{
			SeatNumber: seat.SeatNumber,
			SeatType:   seat.SeatType,
			Price:      seat.Price,
		})
	}

	resp := BookingResponse{
		ID:            booking.ID.String(),
		BookingID:     booking.BookingCode,
		UserID:        booking.UserID.String(),
		MovieID:       booking.MovieID.String(),
		MovieTitle:    booking.MovieTitle,
		ShowDate:      booking.ShowDate.Format("2006-01-02"),
		ShowTime:      booking.ShowTime,
		Seats:         seats,
		TotalAmount:   booking.TotalAmount,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		PaymentMethod: booking.PaymentMethod,
		Theater: TheaterResponse{
			Name:     booking.Theater.Name,
			Location: booking.Theater.Location,
		},
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}

	if booking.Movie != nil {
		resp.Movie = &BookingMovieResponse{
			ID:     booking.MovieID.String(),
			Title:  booking.Movie.Title,
			Poster: booking.Movie.Poster,
		}
		if withDuration {
			resp.Movie.Duration = booking.Movie.Duration
		}
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking, false))
	}
	return out
}
