package windfind

import "context"

// Domain classification labels. A domain is accepted only if one of the
// positive labels scores above DomainScoreThreshold.
const (
	DomainLabelRentalOrSchool = "windsurf_rental_or_school"
	DomainLabelMagazine       = "windsurfing_magazine"
	DomainLabelSportComplex   = "sport_complex"
	DomainLabelHolidayCenter  = "holiday_center"
	DomainLabelOther          = "other"
)

// DomainLabels is the fixed vocabulary for domain classification.
var DomainLabels = []string{
	DomainLabelRentalOrSchool,
	DomainLabelMagazine,
	DomainLabelSportComplex,
	DomainLabelHolidayCenter,
	DomainLabelOther,
}

// PositiveDomainLabels are the labels that accept a domain. Magazines
// and "other" are content sites, not businesses offering rentals.
var PositiveDomainLabels = []string{
	DomainLabelRentalOrSchool,
	DomainLabelSportComplex,
	DomainLabelHolidayCenter,
}

// Subpage categorization labels.
const (
	CategoryLocation  = "location_information"
	CategoryPricing   = "pricing"
	CategoryCamps     = "camps"
	CategoryCourses   = "courses"
	CategoryWeather   = "weather_conditions"
	CategoryTransport = "transport_options"
	CategoryOther     = "other"
)

// SubpageLabels is the fixed multi-label vocabulary for subpage
// categorization. "other" never contributes URLs to a category.
var SubpageLabels = []string{
	CategoryLocation,
	CategoryPricing,
	CategoryCamps,
	CategoryCourses,
	CategoryWeather,
	CategoryTransport,
	CategoryOther,
}

// Score thresholds. Both are exclusive: a score exactly at the
// threshold does not qualify.
const (
	DomainScoreThreshold  = 0.5
	SubpageScoreThreshold = 0.3
)

// Classifier scores text against a set of labels.
type Classifier interface {
	// Classify returns a probability in [0,1] for every requested label.
	// Labels missing from the provider response default to 0.
	Classify(ctx context.Context, text string, labels []string) (map[string]float64, error)
}
