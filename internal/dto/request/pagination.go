package request

import "movie-booking/pkg/utils"

const (
	DefaultMovieLimit    = 12
	MaxMovieLimit        = 100
	DefaultTrendingLimit = 6
)

func (p MovieListRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.PageSize())
}

// PageSize falls back to the default limit and never exceeds MaxMovieLimit
func (p MovieListRequest) PageSize() int {
	if p.Limit < 1 {
		return DefaultMovieLimit
	}
	if p.Limit > MaxMovieLimit {
		return MaxMovieLimit
	}
	return p.Limit
}
