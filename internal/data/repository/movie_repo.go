package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrMovieNotFound is returned by writes that matched no movie row
var ErrMovieNotFound = errors.New("movie not found")

type MovieSort string

const (
	MovieSortPopularity MovieSort = "popularity"
	MovieSortTitle      MovieSort = "title"
	MovieSortRating     MovieSort = "rating"
	MovieSortRelease    MovieSort = "release"
)

// MovieFilter narrows a catalog listing. Empty fields are not applied.
type MovieFilter struct {
	Search   string
	Genre    string
	Language string
	Status   string
	Sort     MovieSort
}

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context, filter MovieFilter, limit, offset int) ([]*entity.Movie, error)
	Count(ctx context.Context, filter MovieFilter) (int64, error)
	FindTrending(ctx context.Context, limit int) ([]*entity.Movie, error)
	ListFacetSources(ctx context.Context, status entity.MovieStatus) ([]entity.MovieFacetSource, error)
	IncrementBookingCount(ctx context.Context, id uuid.UUID, seats int) error
	DeleteAll(ctx context.Context) error
}

type movieRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewMovieRepository(db database.DBTX, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, description, genre, director, cast_members, duration, language,
		rating_imdb, certification, poster, release_date, status,
		price_premium, price_regular, price_economy, popularity, booking_count,
		created_at, updated_at`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.Director,
		&movie.Cast,
		&movie.Duration,
		&movie.Language,
		&movie.Rating.IMDb,
		&movie.Rating.Certification,
		&movie.Poster,
		&movie.ReleaseDate,
		&movie.Status,
		&movie.Pricing.Premium,
		&movie.Pricing.Regular,
		&movie.Pricing.Economy,
		&movie.Popularity,
		&movie.BookingCount,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (` + movieColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	movie.Pricing = movie.Pricing.WithDefaults()

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		nonNilStrings(movie.Genre),
		movie.Director,
		nonNilCast(movie.Cast),
		movie.Duration,
		nonNilStrings(movie.Language),
		movie.Rating.IMDb,
		movie.Rating.Certification,
		movie.Poster,
		movie.ReleaseDate,
		movie.Status,
		movie.Pricing.Premium,
		movie.Pricing.Regular,
		movie.Pricing.Economy,
		movie.Popularity,
		movie.BookingCount,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter, limit, offset int) ([]*entity.Movie, error) {
	where, args := buildMovieWhere(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + movieColumns + ` FROM movies`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" ORDER BY " + movieOrderBy(filter.Sort))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	movies, err := r.queryMovies(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context, filter MovieFilter) (int64, error) {
	where, args := buildMovieWhere(filter)

	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`+where, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) FindTrending(ctx context.Context, limit int) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies
		WHERE status = $1
		ORDER BY ` + movieOrderBy(MovieSortPopularity) + `
		LIMIT $2`

	movies, err := r.queryMovies(ctx, query, entity.MovieStatusNowShowing, limit)
	if err != nil {
		r.log.Error("Failed to find trending movies", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("failed to find trending movies: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) ListFacetSources(ctx context.Context, status entity.MovieStatus) ([]entity.MovieFacetSource, error) {
	query := `SELECT genre, language, certification FROM movies WHERE status = $1`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to list facet sources", zap.Error(err), zap.String("status", string(status)))
		return nil, fmt.Errorf("failed to list facet sources: %w", err)
	}
	defer rows.Close()

	var sources []entity.MovieFacetSource
	for rows.Next() {
		var src entity.MovieFacetSource
		if err := rows.Scan(&src.Genre, &src.Language, &src.Certification); err != nil {
			return nil, fmt.Errorf("failed to scan facet source: %w", err)
		}
		sources = append(sources, src)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate facet sources: %w", err)
	}

	return sources, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, genre = $4, director = $5, cast_members = $6,
		    duration = $7, language = $8, rating_imdb = $9, certification = $10, poster = $11,
		    release_date = $12, status = $13, price_premium = $14, price_regular = $15,
		    price_economy = $16, popularity = $17, updated_at = $18
		WHERE id = $1
	`

	movie.Pricing = movie.Pricing.WithDefaults()

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		nonNilStrings(movie.Genre),
		movie.Director,
		nonNilCast(movie.Cast),
		movie.Duration,
		nonNilStrings(movie.Language),
		movie.Rating.IMDb,
		movie.Rating.Certification,
		movie.Poster,
		movie.ReleaseDate,
		movie.Status,
		movie.Pricing.Premium,
		movie.Pricing.Regular,
		movie.Pricing.Economy,
		movie.Popularity,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update movie %s: %w", movie.ID, ErrMovieNotFound)
	}

	return nil
}

// IncrementBookingCount adds the booked seats to the movie counter in a single statement
func (r *movieRepository) IncrementBookingCount(ctx context.Context, id uuid.UUID, seats int) error {
	query := `UPDATE movies SET booking_count = booking_count + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, seats)
	if err != nil {
		r.log.Error("Failed to increment booking count",
			zap.Error(err),
			zap.String("movie_id", id.String()),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("failed to increment booking count: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("increment booking count %s: %w", id, ErrMovieNotFound)
	}

	return nil
}

func (r *movieRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("failed to delete movies: %w", err)
	}
	return nil
}

func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return movies, nil
}

func buildMovieWhere(filter MovieFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.Genre != "" {
		args = append(args, filter.Genre)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(genre)", len(args)))
	}
	if filter.Language != "" {
		args = append(args, filter.Language)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(language)", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// movieOrderBy ends every ordering with id so pages never overlap
func movieOrderBy(sort MovieSort) string {
	switch sort {
	case MovieSortTitle:
		return "title ASC, id"
	case MovieSortRating:
		return "rating_imdb DESC NULLS LAST, id"
	case MovieSortRelease:
		return "release_date DESC, id"
	default:
		return "popularity DESC, booking_count DESC, id"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilCast(cast []entity.CastMember) []entity.CastMember {
	if cast == nil {
		return []entity.CastMember{}
	}
	return cast
}
