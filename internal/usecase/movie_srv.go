package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MovieService interface {
	ListMovies(ctx context.Context, req request.MovieListRequest) (*response.MovieListResponse, error)
	Trending(ctx context.Context, limit int) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
}

type movieService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

// ListMovies returns one catalog page together with the facets of every now-showing movie.
// The page, the total and the facet sources are read concurrently; any failure fails the call.
func (s *movieService) ListMovies(ctx context.Context, req request.MovieListRequest) (*response.MovieListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	req.Page = page
	limit := req.PageSize()

	filter := repository.MovieFilter{
		Search:   strings.TrimSpace(req.Search),
		Genre:    req.Genre,
		Language: req.Language,
		Status:   string(entity.MovieStatusNowShowing),
		Sort:     ParseMovieSort(req.Sort),
	}
	if req.Status != nil {
		filter.Status = *req.Status
	}

	var (
		movies  []*entity.Movie
		total   int64
		sources []entity.MovieFacetSource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = s.movies.FindAll(gctx, filter, limit, req.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.movies.Count(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		sources, err = s.movies.ListFacetSources(gctx, entity.MovieStatusNowShowing)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to list movies",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("list movies: %w", err)
	}

	return &response.MovieListResponse{
		Movies:     response.MoviesToResponse(movies),
		Pagination: response.NewPaginationMeta(page, limit, total),
		Filters:    BuildFacets(sources),
	}, nil
}

func (s *movieService) Trending(ctx context.Context, limit int) ([]response.MovieResponse, error) {
	if limit < 1 {
		limit = request.DefaultTrendingLimit
	}
	if limit > request.MaxMovieLimit {
		limit = request.MaxMovieLimit
	}

	movies, err := s.movies.FindTrending(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get trending movies", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("get trending movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	releaseDate, err := time.Parse(time.DateOnly, req.ReleaseDate)
	if err != nil {
		return nil, fieldError("ReleaseDate", "Must match format 2006-01-02")
	}

	status := entity.MovieStatus(req.Status)
	if status == "" {
		status = entity.MovieStatusNowShowing
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Genre:       req.Genre,
		Director:    req.Director,
		Cast:        castFromRequest(req.Cast),
		Duration:    req.Duration,
		Language:    req.Language,
		Rating: entity.Rating{
			IMDb:          req.Rating.IMDb,
			Certification: entity.Certification(req.Rating.Certification),
		},
		Poster:      req.Poster,
		ReleaseDate: releaseDate,
		Status:      status,
		Pricing: entity.Pricing{
			Premium: req.Pricing.Premium,
			Regular: req.Pricing.Regular,
			Economy: req.Pricing.Economy,
		}.WithDefaults(),
		Popularity: req.Popularity,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie applies a partial update; the booking counter is never touched here
func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update movie validation failed", zap.Error(err))
		return nil, err
	}

	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		movie.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Genre != nil {
		movie.Genre = req.Genre
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Cast != nil {
		movie.Cast = castFromRequest(req.Cast)
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	if req.Language != nil {
		movie.Language = req.Language
	}
	if req.Rating != nil {
		movie.Rating = entity.Rating{
			IMDb:          req.Rating.IMDb,
			Certification: entity.Certification(req.Rating.Certification),
		}
	}
	if req.Poster != nil {
		movie.Poster = *req.Poster
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse(time.DateOnly, *req.ReleaseDate)
		if err != nil {
			return nil, fieldError("ReleaseDate", "Must match format 2006-01-02")
		}
		movie.ReleaseDate = releaseDate
	}
	if req.Status != nil {
		movie.Status = entity.MovieStatus(*req.Status)
	}
	if req.Pricing != nil {
		movie.Pricing = entity.Pricing{
			Premium: req.Pricing.Premium,
			Regular: req.Pricing.Regular,
			Economy: req.Pricing.Economy,
		}.WithDefaults()
	}
	if req.Popularity != nil {
		movie.Popularity = *req.Popularity
	}
	movie.UpdatedAt = time.Now()

	if err := s.movies.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// findMovie maps malformed and unknown ids to ErrNotFound
func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	return movie, nil
}

// ParseMovieSort maps the sort query value; anything unknown sorts by popularity
func ParseMovieSort(value string) repository.MovieSort {
	switch repository.MovieSort(strings.ToLower(value)) {
	case repository.MovieSortTitle:
		return repository.MovieSortTitle
	case repository.MovieSortRating:
		return repository.MovieSortRating
	case repository.MovieSortRelease:
		return repository.MovieSortRelease
	default:
		return repository.MovieSortPopularity
	}
}

// BuildFacets collects the distinct, sorted genres, languages and certifications
func BuildFacets(sources []entity.MovieFacetSource) response.MovieFilters {
	genres := make(map[string]struct{})
	languages := make(map[string]struct{})
	certifications := make(map[string]struct{})

	for _, src := range sources {
		for _, g := range src.Genre {
			genres[g] = struct{}{}
		}
		for _, l := range src.Language {
			languages[l] = struct{}{}
		}
		if src.Certification != "" {
			certifications[string(src.Certification)] = struct{}{}
		}
	}

	return response.MovieFilters{
		Genres:         sortedKeys(genres),
		Languages:      sortedKeys(languages),
		Certifications: sortedKeys(certifications),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func castFromRequest(cast []request.CastMemberRequest) []entity.CastMember {
	out := make([]entity.CastMember, 0, len(cast))
	for _, member := range cast {
		out = append(out, entity.CastMember{Name: member.Name, Role: member.Role})
	}
	return out
}
