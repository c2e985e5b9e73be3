package service

import (
	"context"

	"valuation_backend/internal/valuation/domain"
)

// aggregateCandidates pulls the raw candidate pool: the identifier-keyed
// primary source first, then the location-keyed fallback when the primary
// yielded nothing. Sources are concatenated, not merged; identity
// de-duplication happens during selection. A failing source is logged and
// treated as empty so one bad provider never aborts the pipeline.
func (s *Service) aggregateCandidates(ctx context.Context, subject domain.SubjectProfile) []domain.CandidateRecord {
	log := s.log.WithContext(ctx)

	var pool []domain.CandidateRecord

	if subject.ExternalID != "" && s.src.Primary != nil {
		records, err := s.src.Primary.CompsByProperty(ctx, subject.ExternalID, s.cfg.GetCompsRequestCount())
		if err != nil {
			log.ProviderDegraded("primary", "comps_by_property", err)
		} else {
			pool = append(pool, records...)
		}
	}

	if len(pool) == 0 && s.src.Fallback != nil {
		records, err := s.src.Fallback.CompsByLocation(ctx, subject.Lat, subject.Lon,
			s.cfg.GetFallbackRadiusMiles(), s.cfg.GetFallbackMaxResults())
		if err != nil {
			log.ProviderDegraded("fallback", "comps_by_location", err)
		} else {
			pool = append(pool, records...)
		}
	}

	// Records with no resolvable identity or coordinates can never be
	// deduplicated or distance-graded; drop them here, keep everything
	// else for the selection filters.
	usable := pool[:0]
	for _, record := range pool {
		if record.ID == "" {
			continue
		}
		if record.Lat == 0 && record.Lon == 0 {
			continue
		}
		usable = append(usable, record)
	}

	return usable
}
