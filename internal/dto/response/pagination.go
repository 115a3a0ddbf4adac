package response

import "movie-booking/pkg/utils"

type PaginationMeta struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	pages := utils.CalculateTotalPages(total, limit)
	return PaginationMeta{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
