package request

// MovieListRequest holds the catalog query after parsing.
// Status is nil when the query string did not carry it at all.
type MovieListRequest struct {
	Search   string
	Genre    string
	Language string
	Status   *string
	Page     int
	Limit    int
	Sort     string
}

type CastMemberRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Role string `json:"role" validate:"max=100"`
}

type RatingRequest struct {
	IMDb          *float64 `json:"imdb,omitempty" validate:"omitempty,min=0,max=10"`
	Certification string   `json:"certification" validate:"required,oneof=U UA A"`
}

type PricingRequest struct {
	Premium float64 `json:"premium" validate:"omitempty,gt=0"`
	Regular float64 `json:"regular" validate:"omitempty,gt=0"`
	Economy float64 `json:"economy" validate:"omitempty,gt=0"`
}

type MovieRequest struct {
	Title       string              `json:"title" validate:"required,min=1,max=200"`
	Description string              `json:"description" validate:"required,max=2000"`
	Genre       []string            `json:"genre" validate:"required,min=1,dive,required"`
	Director    string              `json:"director" validate:"required,max=200"`
	Cast        []CastMemberRequest `json:"cast" validate:"dive"`
	Duration    int                 `json:"duration" validate:"required,min=1,max=999"`
	Language    []string            `json:"language" validate:"required,min=1,dive,required"`
	Rating      RatingRequest       `json:"rating"`
	Poster      string              `json:"poster" validate:"required,poster_url"`
	ReleaseDate string              `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Status      string              `json:"status" validate:"omitempty,oneof=coming-soon now-showing ended"`
	Pricing     PricingRequest      `json:"pricing"`
	Popularity  float64             `json:"popularity" validate:"min=0"`
}

// MovieUpdateRequest is a partial update; nil fields are left unchanged
type MovieUpdateRequest struct {
	Title       *string             `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre       []string            `json:"genre,omitempty" validate:"omitempty,min=1,dive,required"`
	Director    *string             `json:"director,omitempty" validate:"omitempty,max=200"`
	Cast        []CastMemberRequest `json:"cast,omitempty" validate:"omitempty,dive"`
	Duration    *int                `json:"duration,omitempty" validate:"omitempty,min=1,max=999"`
	Language    []string            `json:"language,omitempty" validate:"omitempty,min=1,dive,required"`
	Rating      *RatingRequest      `json:"rating,omitempty"`
	Poster      *string             `json:"poster,omitempty" validate:"omitempty,poster_url"`
	ReleaseDate *string             `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *string             `json:"status,omitempty" validate:"omitempty,oneof=coming-soon now-showing ended"`
	Pricing     *PricingRequest     `json:"pricing,omitempty"`
	Popularity  *float64            `json:"popularity,omitempty" validate:"omitempty,min=0"`
}
