package request

type SeatRequest struct {
	SeatNumber string  `json:"seatNumber" validate:"required,max=10"`
	SeatType   string  `json:"seatType" validate:"required,oneof=economy regular premium"`
	Price      float64 `json:"price" validate:"gt=0"`
}

type TheaterRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Location string `json:"location" validate:"max=200"`
}

type CreateBookingRequest struct {
	MovieID       string         `json:"movieId" validate:"required,uuid"`
	ShowDate      string         `json:"showDate" validate:"required"`
	ShowTime      string         `json:"showTime" validate:"required,max=20"`
	Seats         []SeatRequest  `json:"seats" validate:"required,min=1,dive"`
	Theater       TheaterRequest `json:"theater"`
	PaymentMethod *string        `json:"paymentMethod,omitempty" validate:"omitempty,max=50"`
}
