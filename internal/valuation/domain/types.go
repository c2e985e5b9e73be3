package domain

import (
	"time"
)

// SubjectProfile is the property being valued. Zero values mean "unknown";
// unknown attributes relax the matching filter for that axis instead of
// rejecting candidates.
type SubjectProfile struct {
	Lat float64
	Lon float64

	Sqft      int
	Beds      int
	Baths     int
	YearBuilt int

	// ExternalID is the primary provider's identifier (zpid) when one was
	// found for the address. Empty is non-fatal: the pipeline proceeds with
	// the location-keyed fallback source.
	ExternalID string

	Address    string
	City       string
	State      string
	PostalCode string
}

// SubjectFacts is one provider's view of the subject attributes, merged
// into the profile with set-if-absent semantics.
type SubjectFacts struct {
	Sqft      int
	Beds      int
	Baths     int
	YearBuilt int
	Lat       float64
	Lon       float64
}

// CandidateRecord is one raw prospective comparable, normalized from a
// provider payload but not yet admitted.
type CandidateRecord struct {
	// ID is the provider-scoped identity; records without one are discarded
	// before selection, and no two admitted comps may share an ID.
	ID     string
	Source string

	Lat float64
	Lon float64

	Address      string
	SalePrice    int
	SaleDate     time.Time
	Sqft         int
	Beds         int
	Baths        int
	YearBuilt    int
	PropertyType string

	// NeedsEnrichment is true for sources whose records never carry sale
	// price/date directly (filled later from sale history). When false, a
	// record with no sale date is rejected by the recency filter.
	NeedsEnrichment bool
}

// Comp is a candidate that survived selection, augmented with the distance
// and the confidence grade of the tier that admitted it.
type Comp struct {
	CandidateRecord

	DistanceMiles float64
	Grade         string
	// PricePerSqft is set by PSF aggregation, 0 when not computable.
	PricePerSqft float64
}

// SaleEvent is one historical sale of a property.
type SaleEvent struct {
	Price int
	Date  time.Time
}

// Tier is one ring of the expanding-radius search, pairing a maximum
// distance with the confidence grade assigned to comps admitted inside it.
type Tier struct {
	RadiusMiles float64
	Grade       string
}

// DefaultTiers returns the standard grade ladder, tightest ring first.
func DefaultTiers() []Tier {
	return []Tier{
		{RadiusMiles: 1, Grade: "A+"},
		{RadiusMiles: 2, Grade: "B+"},
		{RadiusMiles: 3, Grade: "C+"},
		{RadiusMiles: 5, Grade: "D+"},
		{RadiusMiles: 10, Grade: "F"},
	}
}

// Tolerances are the similarity and recency bounds applied during selection.
type Tolerances struct {
	Cap           int
	Beds          int
	Baths         int
	YearBuilt     int
	Sqft          int
	RecencyWindow time.Duration
}
