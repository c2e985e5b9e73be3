package market

import (
	"context"

	"valuation_backend/internal/geocode"
	"valuation_backend/platform/apperr"
	"valuation_backend/platform/logger"
)

// CountyExtractor resolves the county/state of an address.
type CountyExtractor interface {
	CountyState(ctx context.Context, address string) (string, string, error)
}

// Geocoder yields structured address components. Used as the fallback when
// AI extraction is unconfigured or fails.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (geocode.Location, error)
}

// Info is the market snapshot returned to callers: the metro record plus
// the derived temperature label.
type Info struct {
	Record
	MarketType string `json:"marketType"`
}

// Service answers market condition queries for an address.
type Service struct {
	store     *Store
	extractor CountyExtractor
	geocoder  Geocoder
	log       *logger.Logger
}

// NewService creates the market service. extractor may be nil when no AI
// key is configured; address queries then fall back to geocoded components.
func NewService(store *Store, extractor CountyExtractor, geocoder Geocoder, log *logger.Logger) *Service {
	return &Service{store: store, extractor: extractor, geocoder: geocoder, log: log}
}

// InfoByAddress resolves the county/state of the address and looks up the
// metro record.
func (s *Service) InfoByAddress(ctx context.Context, address string) (Info, error) {
	county, state, err := s.countyState(ctx, address)
	if err != nil {
		return Info{}, err
	}
	if state == "" {
		return Info{}, apperr.NotFound("no county found for address: " + address)
	}

	return s.InfoByCounty(county, state), nil
}

// InfoByCounty looks up the metro record directly. Never fails: a county
// outside the dataset yields a record with unknown figures and a warm
// default temperature.
func (s *Service) InfoByCounty(county, state string) Info {
	record := s.store.Lookup(county, state)
	return Info{
		Record:     record,
		MarketType: Temperature(record.DaysOnMarket),
	}
}

// countyState prefers AI extraction and degrades to the geocoder's
// structured components. County may come back empty from the geocoder; the
// store treats that as a state-level lookup.
func (s *Service) countyState(ctx context.Context, address string) (string, string, error) {
	if s.extractor != nil {
		county, state, err := s.extractor.CountyState(ctx, address)
		switch {
		case err != nil:
			s.log.ProviderDegraded("gemini", "county_state", err)
		case county != "" && state != "":
			return county, state, nil
		case s.geocoder == nil:
			// Extraction ran and found nothing; nothing left to try.
			return "", "", nil
		}
	}

	if s.geocoder == nil {
		return "", "", apperr.Unavailable("county extraction is not configured")
	}

	loc, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		return "", "", apperr.Wrap(apperr.KindUnavailable, "could not determine county for address", err)
	}
	return loc.County, loc.State, nil
}
