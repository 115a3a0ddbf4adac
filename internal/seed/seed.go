// Package seed wipes the store and loads the demo users and movies used for
// local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result summarises what was loaded
type Result struct {
	Users  []*entity.User
	Movies []*entity.Movie
}

// Run applies the schema and replaces all data in a single transaction,
// so a failed run leaves the previous data in place.
func Run(ctx context.Context, db database.PgxIface, log *zap.Logger) (*Result, error) {
	log = log.With(zap.String("component", "seed"))

	if err := database.Migrate(ctx, db); err != nil {
		return nil, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	repo := repository.NewRepository(tx, log)

	// payments reference bookings, bookings reference users and movies
	if err := repo.Payment.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := repo.Booking.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := repo.Movie.DeleteAll(ctx); err != nil {
		return nil, err
	}
	if err := repo.User.DeleteAll(ctx); err != nil {
		return nil, err
	}
	log.Info("Cleared existing data")

	now := time.Now()
	result := &Result{}

	for _, u := range demoUsers {
		user, err := newUser(u, now)
		if err != nil {
			return nil, err
		}
		if err := repo.User.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		result.Users = append(result.Users, user)
	}
	log.Info("Seeded users", zap.Int("count", len(result.Users)))

	for _, m := range demoMovies {
		movie, err := newMovie(m, now)
		if err != nil {
			return nil, err
		}
		if err := repo.Movie.Create(ctx, movie); err != nil {
			return nil, fmt.Errorf("seed movie %s: %w", m.Title, err)
		}
		result.Movies = append(result.Movies, movie)
	}
	log.Info("Seeded movies", zap.Int("count", len(result.Movies)))

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit seed: %w", err)
	}

	return result, nil
}

func newUser(u demoUser, now time.Time) (*entity.User, error) {
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
	}

	phone := u.Phone
	return &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: hash,
		Phone:        &phone,
		Role:         u.Role,
		IsActive:     true,
	}, nil
}

func newMovie(m demoMovie, now time.Time) (*entity.Movie, error) {
	releaseDate, err := time.Parse(time.DateOnly, m.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("release date for %s: %w", m.Title, err)
	}

	imdb := m.IMDb
	return &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		Director:    m.Director,
		Cast:        m.Cast,
		Duration:    m.Duration,
		Language:    m.Language,
		Rating: entity.Rating{
			IMDb:          &imdb,
			Certification: m.Certification,
		},
		Poster:       m.Poster,
		ReleaseDate:  releaseDate,
		Status:       entity.MovieStatusNowShowing,
		Pricing:      m.Pricing.WithDefaults(),
		Popularity:   m.Popularity,
		BookingCount: m.BookingCount,
	}, nil
}
