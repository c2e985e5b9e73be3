// Package service orchestrates the comp-selection and valuation pipeline.
package service

import (
	"context"
	"time"

	"valuation_backend/internal/geocode"
	"valuation_backend/internal/valuation/domain"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
)

// Geocoder resolves a free-text address to coordinates. Failure here is
// fatal for the whole pipeline: no location, no distance math.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (geocode.Location, error)
}

// PropertyFinder looks up the primary provider's identifier for an address.
// A miss is (empty, nil); the pipeline degrades to location-keyed sources.
type PropertyFinder interface {
	SearchPropertyID(ctx context.Context, address string) (string, error)
}

// SubjectDetailsSource fetches subject attributes by provider identifier.
type SubjectDetailsSource interface {
	PropertyDetails(ctx context.Context, id string) (domain.SubjectFacts, error)
}

// SupplementarySource fetches subject attributes by structured address,
// used to backfill fields the primary lookup left unset.
type SupplementarySource interface {
	PropertyFacts(ctx context.Context, street, city, state, zip string) (domain.SubjectFacts, error)
}

// CompSource returns the candidate pool directly associated with a
// provider identifier.
type CompSource interface {
	CompsByProperty(ctx context.Context, id string, count int) ([]domain.CandidateRecord, error)
}

// FallbackCompSource returns a candidate pool around a coordinate, used
// when the primary source yields nothing.
type FallbackCompSource interface {
	CompsByLocation(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]domain.CandidateRecord, error)
}

// SaleHistorySource returns the historical sale events for a property,
// already filtered to events flagged as sales.
type SaleHistorySource interface {
	SaleHistory(ctx context.Context, id string) ([]domain.SaleEvent, error)
}

// Sources bundles the external collaborators of the valuation pipeline.
// Any source except Geocoder may be nil; the corresponding step is skipped.
type Sources struct {
	Geocoder    Geocoder
	Finder      PropertyFinder
	Details     SubjectDetailsSource
	Supplement  SupplementarySource
	Primary     CompSource
	Fallback    FallbackCompSource
	SaleHistory SaleHistorySource
}

// Summary is the valuation output consumed by the chat front end and the
// deal calculator.
type Summary struct {
	Comps       []domain.Comp
	AveragePSF  float64
	SubjectSqft int
	Subject     domain.SubjectProfile
}

// Service runs the comp-selection and valuation pipeline. Each call is
// stateless end-to-end; nothing is shared across requests.
type Service struct {
	src   Sources
	cfg   config.CompsConfig
	tiers []domain.Tier
	log   *logger.Logger

	// now is swappable for recency-window tests.
	now func() time.Time
}

func New(src Sources, cfg config.CompsConfig, log *logger.Logger) *Service {
	return &Service{
		src:   src,
		cfg:   cfg,
		tiers: domain.DefaultTiers(),
		log:   log,
		now:   time.Now,
	}
}

func (s *Service) tolerances() domain.Tolerances {
	return domain.Tolerances{
		Cap:           s.cfg.GetCompCap(),
		Beds:          s.cfg.GetBedsTolerance(),
		Baths:         s.cfg.GetBathsTolerance(),
		YearBuilt:     s.cfg.GetYearBuiltTolerance(),
		Sqft:          s.cfg.GetSqftTolerance(),
		RecencyWindow: s.cfg.GetRecencyWindow(),
	}
}

// GetCompSummary values the property at address: resolve location, build the
// subject profile, aggregate candidates, select the best comps, enrich their
// sale data, and average the price per square foot.
//
// manualSqft > 0 unconditionally overrides the fetched living area; it is an
// explicit human correction of unreliable public data. Only a geocoding
// failure returns an error; an empty comp set with a 0.0 average is the
// valid "no comparable sales found" outcome.
func (s *Service) GetCompSummary(ctx context.Context, address string, manualSqft int) (Summary, error) {
	log := s.log.WithContext(ctx)

	subject, err := s.buildSubject(ctx, address, manualSqft)
	if err != nil {
		return Summary{}, err
	}
	log.Debug("subject profile built",
		"sqft", subject.Sqft, "beds", subject.Beds, "baths", subject.Baths,
		"year", subject.YearBuilt, "externalId", subject.ExternalID)

	candidates := s.aggregateCandidates(ctx, subject)
	log.Debug("candidate pool aggregated", "candidates", len(candidates))

	comps := domain.Select(subject, candidates, s.tiers, s.tolerances(), s.now())
	log.Debug("comps selected", "admitted", len(comps))

	s.enrich(ctx, comps)

	comps, avgPSF := domain.AggregatePSF(comps)
	log.Info("valuation complete",
		"address", address, "comps", len(comps), "avgPsf", avgPSF, "subjectSqft", subject.Sqft)

	return Summary{
		Comps:       comps,
		AveragePSF:  avgPSF,
		SubjectSqft: subject.Sqft,
		Subject:     subject,
	}, nil
}
