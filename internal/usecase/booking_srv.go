package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBookingCodeAttempts bounds how often a colliding booking code is regenerated
const maxBookingCodeAttempts = 3

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)

	// Admin
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	movies   repository.MovieRepository
	bookings repository.BookingRepository
	log      *zap.Logger

	now     func() time.Time
	newCode func(time.Time) string
}

func NewBookingService(movies repository.MovieRepository, bookings repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		movies:   movies,
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
		newCode:  utils.GenerateBookingCode,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate request
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fieldError("MovieID", "Must be a valid UUID")
	}

	showDate, err := ParseShowDate(req.ShowDate)
	if err != nil {
		return nil, fieldError("ShowDate", "Must be a date (2006-01-02) or RFC 3339 timestamp")
	}

	// 2. Resolve movie, nothing is written when it is missing
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		s.log.Warn("Booking for unknown movie", zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, ErrNotFound)
	}

	// 3. Price the seats as quoted; quotes off the movie's tier price are only logged
	pricing := movie.Pricing.WithDefaults()
	seats := make([]entity.Seat, len(req.Seats))
	for i, seat := range req.Seats {
		seats[i] = entity.Seat{
			SeatNumber: seat.SeatNumber,
			SeatType:   entity.SeatType(seat.SeatType),
			Price:      seat.Price,
		}
		if tier := pricing.PriceFor(seats[i].SeatType); seat.Price != tier {
			s.log.Warn("Seat price differs from movie pricing",
				zap.String("movie_id", movie.ID.String()),
				zap.String("seat_number", seat.SeatNumber),
				zap.String("seat_type", seat.SeatType),
				zap.Float64("quoted", seat.Price),
				zap.Float64("tier", tier),
			)
		}
	}
	price := ComputeTotal(seats)

	// 4. Persist with a fresh booking code
	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		MovieID:       movie.ID,
		MovieTitle:    movie.Title,
		ShowDate:      showDate,
		ShowTime:      req.ShowTime,
		Seats:         seats,
		TotalAmount:   price.Total,
		Status:        entity.BookingStatusConfirmed,
		PaymentStatus: entity.PaymentStatusCompleted,
		PaymentMethod: req.PaymentMethod,
		Theater: entity.Theater{
			Name:     req.Theater.Name,
			Location: req.Theater.Location,
		},
	}

	if err := s.insertWithFreshCode(ctx, booking); err != nil {
		return nil, err
	}

	// 5. Best effort: the booking stays even when the counter update fails
	if err := s.movies.IncrementBookingCount(ctx, movie.ID, len(seats)); err != nil {
		s.log.Warn("Failed to increment booking count",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
			zap.String("booking_code", booking.BookingCode),
			zap.Int("seats", len(seats)),
		)
	}

	s.log.Info("Booking created",
		zap.String("booking_code", booking.BookingCode),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movie.ID.String()),
		zap.Int("seats", len(seats)),
		zap.Float64("total", booking.TotalAmount),
	)

	booking.Movie = &entity.BookingMovie{
		Title:    movie.Title,
		Poster:   movie.Poster,
		Duration: movie.Duration,
	}
	resp := response.BookingToResponse(booking, false)
	return &resp, nil
}

func (s *bookingService) insertWithFreshCode(ctx context.Context, booking *entity.Booking) error {
	for attempt := 1; ; attempt++ {
		booking.BookingCode = s.newCode(s.now())

		err := s.bookings.Create(ctx, booking)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateBookingCode) || attempt >= maxBookingCodeAttempts {
			return fmt.Errorf("create booking: %w", err)
		}
	}
}

func (s *bookingService) ListBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	bookings, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

// GetBooking hides other users' bookings behind ErrNotFound
func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	booking, err := s.bookings.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	resp := response.BookingToResponse(booking, true)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("booking %s already cancelled: %w", bookingID, ErrConflict)
	}

	if err := s.bookings.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("booking_code", booking.BookingCode),
	)

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = s.now()
	resp := response.BookingToResponse(booking, true)
	return &resp, nil
}

// ParseShowDate accepts a calendar date or an RFC 3339 timestamp
func ParseShowDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
