package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateBookingCode is returned by Create when the generated booking code is already taken
var ErrDuplicateBookingCode = errors.New("booking code already exists")

// ErrBookingNotFound is returned by writes that matched no booking row
var ErrBookingNotFound = errors.New("booking not found")

const bookingCodeConstraint = "bookings_booking_code_key"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	DeleteAll(ctx context.Context) error
}

type bookingRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewBookingRepository(db database.DBTX, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingSelect = `
	SELECT b.id, b.booking_code, b.user_id, b.movie_id, b.movie_title, b.show_date, b.show_time,
	       b.seats, b.total_amount, b.status, b.payment_status, b.payment_method,
	       COALESCE(b.theater_name, ''), COALESCE(b.theater_location, ''),
	       b.created_at, b.updated_at,
	       m.title, m.poster, m.duration
	FROM bookings b
	JOIN movies m ON m.id = b.movie_id
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var movie entity.BookingMovie
	err := row.Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.UserID,
		&booking.MovieID,
		&booking.MovieTitle,
		&booking.ShowDate,
		&booking.ShowTime,
		&booking.Seats,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.Theater.Name,
		&booking.Theater.Location,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&movie.Title,
		&movie.Poster,
		&movie.Duration,
	)
	if err != nil {
		return nil, err
	}
	booking.Movie = &movie
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_code, user_id, movie_id, movie_title, show_date, show_time,
		                      seats, total_amount, status, payment_status, payment_method,
		                      theater_name, theater_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, ''), NULLIF($14, ''), $15, $16)
	`

	seats := booking.Seats
	if seats == nil {
		seats = []entity.Seat{}
	}

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingCode,
		booking.UserID,
		booking.MovieID,
		booking.MovieTitle,
		booking.ShowDate,
		booking.ShowTime,
		seats,
		booking.TotalAmount,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.Theater.Name,
		booking.Theater.Location,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == bookingCodeConstraint {
			r.log.Warn("Booking code collision",
				zap.String("booking_code", booking.BookingCode),
			)
			return ErrDuplicateBookingCode
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingCode, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}

	return booking, nil
}

// FindByIDForUser only returns the booking when it belongs to userID
func (r *bookingRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1 AND b.user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking for user",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := bookingSelect + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings for user %s: %w", userID, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking status %s: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", bookingID, ErrBookingNotFound)
	}

	return nil
}

func (r *bookingRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM bookings`); err != nil {
		return fmt.Errorf("delete bookings: %w", err)
	}
	return nil
}
