package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func movieRouter(svc usecase.MovieService) http.Handler {
	h := NewMovieHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/movies", h.GetMovies)
	r.Get("/api/movies/trending", h.GetTrending)
	r.Get("/api/movies/{id}", h.GetMovieByID)
	r.Post("/api/admin/movies", h.CreateMovie)
	r.Put("/api/admin/movies/{id}", h.UpdateMovie)
	return r
}

func TestParseMovieListQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
		status    *string
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 12},
		{name: "empty status kept", query: "status=", wantPage: 1, wantLimit: 12, status: ptr("")},
		{name: "explicit status", query: "status=ended", wantPage: 1, wantLimit: 12, status: ptr("ended")},
		{name: "limit clamped high", query: "limit=500&page=3", wantPage: 3, wantLimit: 100},
		{name: "limit clamped low", query: "limit=0", wantPage: 1, wantLimit: 1},
		{name: "garbage falls back", query: "limit=abc&page=-2", wantPage: 1, wantLimit: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			req := parseMovieListQuery(values)

			assert.Equal(t, tt.wantPage, req.Page)
			assert.Equal(t, tt.wantLimit, req.Limit)
			assert.Equal(t, tt.status, req.Status)
		})
	}
}

func ptr(s string) *string { return &s }

func TestMovieHandler_GetMovies(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("ListMovies", mock.Anything, request.MovieListRequest{
		Search: "batman",
		Genre:  "Action",
		Sort:   "rating",
		Page:   2,
		Limit:  5,
	}).Return(&response.MovieListResponse{
		Movies:     []response.MovieResponse{{ID: "m1", Title: "The Batman"}},
		Pagination: response.NewPaginationMeta(2, 5, 6),
		Filters:    response.MovieFilters{Genres: []string{"Action"}, Languages: []string{}, Certifications: []string{}},
	}, nil)

	rec := httptest.NewRecorder()
	movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies?search=batman&genre=Action&sort=rating&page=2&limit=5", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var data struct {
		Movies     []map[string]any `json:"movies"`
		Pagination map[string]any   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Movies, 1)
	assert.Equal(t, float64(2), data.Pagination["current"])
	assert.Equal(t, false, data.Pagination["hasNext"])
	assert.Equal(t, true, data.Pagination["hasPrev"])
	svc.AssertExpectations(t)
}

func TestMovieHandler_GetMovies_ServiceError(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("ListMovies", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, msgInternalError, env.Message)
}

func TestMovieHandler_GetTrending(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("Trending", mock.Anything, 3).Return([]response.MovieResponse{{ID: "m1"}}, nil)

	rec := httptest.NewRecorder()
	movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/trending?limit=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestMovieHandler_GetMovieByID_NotFound(t *testing.T) {
	svc := new(MockMovieService)
	svc.On("GetMovie", mock.Anything, "nope").Return(nil, fmt.Errorf("movie nope: %w", usecase.ErrNotFound))

	rec := httptest.NewRecorder()
	movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Movie not found", decodeEnvelope(t, rec).Message)
}

func TestMovieHandler_CreateMovie(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockMovieService)

		rec := httptest.NewRecorder()
		movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/movies", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgInvalidBody, decodeEnvelope(t, rec).Message)
		svc.AssertNotCalled(t, "CreateMovie", mock.Anything, mock.Anything)
	})

	t.Run("validation errors are listed per field", func(t *testing.T) {
		svc := new(MockMovieService)
		svc.On("CreateMovie", mock.Anything, mock.Anything).Return(nil, &usecase.ValidationError{
			Fields: map[string]string{"Poster": "Valid image URL required"},
		})

		rec := httptest.NewRecorder()
		movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/movies", strings.NewReader(`{"title":"X"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, msgValidationFailed, env.Message)
		assert.Equal(t, "Valid image URL required", env.Errors["Poster"])
	})

	t.Run("created", func(t *testing.T) {
		svc := new(MockMovieService)
		svc.On("CreateMovie", mock.Anything, mock.MatchedBy(func(req *request.MovieRequest) bool {
			return req.Title == "Dune" && req.Duration == 155
		})).Return(&response.MovieResponse{ID: "m1", Title: "Dune"}, nil)

		rec := httptest.NewRecorder()
		movieRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/movies", strings.NewReader(`{"title":"Dune","duration":155}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})
}
