package entity

import (
	"time"
)

type MovieStatus string

const (
	MovieStatusComingSoon MovieStatus = "coming-soon"
	MovieStatusNowShowing MovieStatus = "now-showing"
	MovieStatusEnded      MovieStatus = "ended"
)

type Certification string

const (
	CertificationU  Certification = "U"
	CertificationUA Certification = "UA"
	CertificationA  Certification = "A"
)

// Default ticket prices per seat tier
const (
	DefaultPremiumPrice = 400
	DefaultRegularPrice = 280
	DefaultEconomyPrice = 200
)

type CastMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type Rating struct {
	IMDb          *float64      `db:"rating_imdb"`
	Certification Certification `db:"certification"`
}

type Pricing struct {
	Premium float64 `db:"price_premium"`
	Regular float64 `db:"price_regular"`
	Economy float64 `db:"price_economy"`
}

// WithDefaults fills every unset tier with its default price
func (p Pricing) WithDefaults() Pricing {
	if p.Premium <= 0 {
		p.Premium = DefaultPremiumPrice
	}
	if p.Regular <= 0 {
		p.Regular = DefaultRegularPrice
	}
	if p.Economy <= 0 {
		p.Economy = DefaultEconomyPrice
	}
	return p
}

// PriceFor returns the tier price for a seat type
func (p Pricing) PriceFor(seatType SeatType) float64 {
	switch seatType {
	case SeatTypePremium:
		return p.Premium
	case SeatTypeRegular:
		return p.Regular
	default:
		return p.Economy
	}
}

type Movie struct {
	Base
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	Genre        []string     `db:"genre"`
	Director     string       `db:"director"`
	Cast         []CastMember `db:"cast_members"`
	Duration     int          `db:"duration"`
	Language     []string     `db:"language"`
	Rating       Rating
	Poster       string      `db:"poster"`
	ReleaseDate  time.Time   `db:"release_date"`
	Status       MovieStatus `db:"status"`
	Pricing      Pricing
	Popularity   float64 `db:"popularity"`
	BookingCount int     `db:"booking_count"`
}

// MovieFacetSource is the slice of a movie the catalog filters are built from
type MovieFacetSource struct {
	Genre         []string
	Language      []string
	Certification Certification
}
