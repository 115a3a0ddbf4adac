package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestDemoMoviesAreValid(t *testing.T) {
	now := time.Now()
	for _, m := range demoMovies {
		movie, err := newMovie(m, now)
		require.NoError(t, err, m.Title)

		assert.True(t, utils.IsPosterURL(movie.Poster), m.Title)
		assert.NotEmpty(t, movie.Genre, m.Title)
		assert.NotEmpty(t, movie.Language, m.Title)
		assert.Positive(t, movie.Duration, m.Title)
		assert.Positive(t, movie.Pricing.Economy, m.Title)
		assert.Equal(t, m.Certification, movie.Rating.Certification, m.Title)
		assert.Contains(t, []entity.Certification{entity.CertificationU, entity.CertificationUA, entity.CertificationA}, movie.Rating.Certification, m.Title)
	}
}

func TestRun(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	db.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	db.ExpectBegin()
	db.ExpectExec(`DELETE FROM payments`).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	db.ExpectExec(`DELETE FROM bookings`).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	db.ExpectExec(`DELETE FROM movies`).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	db.ExpectExec(`DELETE FROM users`).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	for range demoUsers {
		db.ExpectExec(`INSERT INTO users`).WithArgs(anyArgs(9)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	for range demoMovies {
		db.ExpectExec(`INSERT INTO movies`).WithArgs(anyArgs(20)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	db.ExpectCommit()

	result, err := Run(context.Background(), db, zap.NewNop())

	require.NoError(t, err)
	assert.Len(t, result.Users, len(demoUsers))
	assert.Len(t, result.Movies, len(demoMovies))
	assert.True(t, utils.CheckPasswordHash("admin123", result.Users[0].PasswordHash))
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestNewMovie_UsesDemoCertification(t *testing.T) {
	m := demoMovies[0]
	m.Certification = entity.CertificationA

	movie, err := newMovie(m, time.Now())

	require.NoError(t, err)
	assert.Equal(t, entity.CertificationA, movie.Rating.Certification)
}

func TestRun_RollsBackOnFailure(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	db.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	db.ExpectBegin()
	db.ExpectExec(`DELETE FROM payments`).WillReturnError(errors.New("permission denied"))
	db.ExpectRollback()

	_, err = Run(context.Background(), db, zap.NewNop())

	assert.Error(t, err)
	assert.NoError(t, db.ExpectationsWereMet())
}
