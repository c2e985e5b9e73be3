package service

import (
	"context"
	"strings"

	"valuation_backend/internal/valuation/domain"
)

// buildSubject constructs the subject profile for one valuation request.
// Geocoding failure aborts; every other miss degrades to a profile with
// unknown attributes, which relax the matching filters instead of failing.
func (s *Service) buildSubject(ctx context.Context, address string, manualSqft int) (domain.SubjectProfile, error) {
	log := s.log.WithContext(ctx)

	location, err := s.src.Geocoder.Resolve(ctx, address)
	if err != nil {
		return domain.SubjectProfile{}, err
	}

	subject := domain.SubjectProfile{
		Lat:        location.Lat,
		Lon:        location.Lon,
		Address:    location.FormattedAddress,
		City:       location.City,
		State:      location.State,
		PostalCode: location.PostalCode,
	}
	if subject.Address == "" {
		subject.Address = address
	}

	if s.src.Finder != nil {
		id, err := s.src.Finder.SearchPropertyID(ctx, address)
		switch {
		case err != nil:
			log.ProviderDegraded("primary", "search_property_id", err)
		case id != "":
			subject.ExternalID = id
			if s.src.Details != nil {
				facts, err := s.src.Details.PropertyDetails(ctx, id)
				if err != nil {
					log.ProviderDegraded("primary", "property_details", err)
				} else {
					applyFacts(&subject, facts)
				}
			}
		}
	}

	if subjectIncomplete(subject) && s.src.Supplement != nil {
		facts, err := s.src.Supplement.PropertyFacts(ctx, streetOf(address), subject.City, subject.State, subject.PostalCode)
		if err != nil {
			log.ProviderDegraded("supplement", "property_facts", err)
		} else {
			applyFacts(&subject, facts)
		}
	}

	// Explicit human correction wins over anything fetched.
	if manualSqft > 0 {
		subject.Sqft = manualSqft
	}

	return subject, nil
}

// applyFacts merges provider attributes into the profile with set-if-absent
// semantics: an already-populated field is never overwritten.
func applyFacts(subject *domain.SubjectProfile, facts domain.SubjectFacts) {
	if subject.Sqft == 0 {
		subject.Sqft = facts.Sqft
	}
	if subject.Beds == 0 {
		subject.Beds = facts.Beds
	}
	if subject.Baths == 0 {
		subject.Baths = facts.Baths
	}
	if subject.YearBuilt == 0 {
		subject.YearBuilt = facts.YearBuilt
	}
}

func subjectIncomplete(subject domain.SubjectProfile) bool {
	return subject.Sqft == 0 || subject.Beds == 0 || subject.Baths == 0 || subject.YearBuilt == 0
}

// streetOf extracts the street segment of a free-text address
// ("1705 Magnolia Ave, San Bernardino, CA 92411" -> "1705 Magnolia Ave").
func streetOf(address string) string {
	if idx := strings.Index(address, ","); idx >= 0 {
		return strings.TrimSpace(address[:idx])
	}
	return strings.TrimSpace(address)
}
