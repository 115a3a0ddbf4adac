package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/internal/payment"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Booking BookingService
	Payment PaymentService
}

func NewService(repo *repository.Repository, gateway payment.Gateway, config *utils.Config, log *zap.Logger) *Service {
	booking := NewBookingService(repo.Movie, repo.Booking, log)

	return &Service{
		Auth:    NewAuthService(repo.User, repo.Session, config.Session, log),
		User:    NewUserService(repo.User, log),
		Movie:   NewMovieService(repo.Movie, log),
		Booking: booking,
		Payment: NewPaymentService(repo.Payment, booking, gateway, config.Payment.Currency, log),
	}
}
