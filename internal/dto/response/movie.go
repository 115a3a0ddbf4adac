package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type CastMemberResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type RatingResponse struct {
	IMDb          *float64             `json:"imdb,omitempty"`
	Certification entity.Certification `json:"certification"`
}

type PricingResponse struct {
	Premium float64 `json:"premium"`
	Regular float64 `json:"regular"`
	Economy float64 `json:"economy"`
}

type MovieResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Genre        []string             `json:"genre"`
	Director     string               `json:"director"`
	Cast         []CastMemberResponse `json:"cast"`
	Duration     int                  `json:"duration"`
	Language     []string             `json:"language"`
	Rating       RatingResponse       `json:"rating"`
	Poster       string               `json:"poster"`
	ReleaseDate  string               `json:"releaseDate"`
	Status       entity.MovieStatus   `json:"status"`
	Pricing      PricingResponse      `json:"pricing"`
	Popularity   float64              `json:"popularity"`
	BookingCount int                  `json:"bookingCount"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// MovieFilters lists the facet values of the now-showing catalog
type MovieFilters struct {
	Genres         []string `json:"genres"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
}

type MovieListResponse struct {
	Movies     []MovieResponse `json:"movies"`
	Pagination PaginationMeta  `json:"pagination"`
	Filters    MovieFilters    `json:"filters"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	cast := make([]CastMemberResponse, 0, len(movie.Cast))
	for _, member := range movie.Cast {
		cast = append(cast, CastMemberResponse{Name: member.Name, Role: member.Role})
	}

	pricing := movie.Pricing.WithDefaults()

	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       nonNil(movie.Genre),
		Director:    movie.Director,
		Cast:        cast,
		Duration:    movie.Duration,
		Language:    nonNil(movie.Language),
		Rating: RatingResponse{
			IMDb:          movie.Rating.IMDb,
			Certification: movie.Rating.Certification,
		},
		Poster:      movie.Poster,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		Status:      movie.Status,
		Pricing: PricingResponse{
			Premium: pricing.Premium,
			Regular: pricing.Regular,
			Economy: pricing.Economy,
		},
		Popularity:   movie.Popularity,
		BookingCount: movie.BookingCount,
		CreatedAt:    movie.CreatedAt,
		UpdatedAt:    movie.UpdatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, MovieToResponse(movie))
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
