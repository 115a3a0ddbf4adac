package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type SeatType string

const (
	SeatTypeEconomy SeatType = "economy"
	SeatTypeRegular SeatType = "regular"
	SeatTypePremium SeatType = "premium"
)

type Seat struct {
	SeatNumber string   `json:"seatNumber"`
	SeatType   SeatType `json:"seatType"`
	Price      float64  `json:"price"`
}

type Theater struct {
	Name     string `db:"theater_name"`
	Location string `db:"theater_location"`
}

// BookingMovie is the movie data joined onto a booking when it is read back
type BookingMovie struct {
	Title    string
	Poster   string
	Duration int
}

type Booking struct {
	Base
	BookingCode   string        `db:"booking_code"`
	UserID        uuid.UUID     `db:"user_id"`
	MovieID       uuid.UUID     `db:"movie_id"`
	MovieTitle    string        `db:"movie_title"`
	ShowDate      time.Time     `db:"show_date"`
	ShowTime      string        `db:"show_time"`
	Seats         []Seat        `db:"seats"`
	TotalAmount   float64       `db:"total_amount"`
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentMethod *string       `db:"payment_method"`
	Theater       Theater
	Movie         *BookingMovie `db:"-"`
}
