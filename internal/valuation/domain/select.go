package domain

import (
	"sort"
	"strings"
	"time"
)

// residentialType reports whether a property classification is a
// single-family residential type. Unknown (empty) classifications pass;
// provider payloads are too inconsistent to demand one.
func residentialType(propertyType string) bool {
	if propertyType == "" {
		return true
	}

	normalized := strings.ToUpper(propertyType)
	normalized = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, normalized)

	switch normalized {
	case "SINGLEFAMILY", "SINGLEFAMILYRESIDENCE", "SFR", "RESIDENTIALSFR", "HOUSE", "RESIDENTIAL":
		return true
	}
	return strings.Contains(normalized, "SINGLEFAMILY")
}

// withinTolerance applies a similarity filter on one attribute. The filter
// only binds when both sides know the value; an unset subject attribute must
// never reject (or spuriously admit) a candidate on that axis.
func withinTolerance(subject, candidate, tolerance int) bool {
	if subject == 0 || candidate == 0 {
		return true
	}
	diff := subject - candidate
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// saleRecentEnough applies the trailing recency window. Candidates with no
// sale date are acceptable only when the source defers price/date to sale
// enrichment; a priced source that omits the date is rejected.
func saleRecentEnough(c CandidateRecord, window time.Duration, now time.Time) bool {
	if c.SaleDate.IsZero() {
		return c.NeedsEnrichment
	}
	if c.SaleDate.After(now) {
		return true
	}
	return now.Sub(c.SaleDate) <= window
}

// Select runs the tiered expanding-radius admission over the candidate pool
// and returns at most tol.Cap comps, sorted by ascending distance.
//
// Tiers are visited tightest first; within a tier candidates keep their
// stable input order. Identity de-duplication spans tiers, so a candidate
// admitted at 1 mile can never reappear at 5.
func Select(subject SubjectProfile, candidates []CandidateRecord, tiers []Tier, tol Tolerances, now time.Time) []Comp {
	admitted := make([]Comp, 0, tol.Cap)
	seen := make(map[string]struct{}, len(candidates))

	for _, tier := range tiers {
		if len(admitted) >= tol.Cap {
			break
		}

		for _, c := range candidates {
			if !residentialType(c.PropertyType) {
				continue
			}
			if _, dup := seen[c.ID]; dup {
				continue
			}

			distance := haversineMiles(subject.Lat, subject.Lon, c.Lat, c.Lon)
			if distance > tier.RadiusMiles {
				continue
			}
			if !withinTolerance(subject.Beds, c.Beds, tol.Beds) {
				continue
			}
			if !withinTolerance(subject.Baths, c.Baths, tol.Baths) {
				continue
			}
			if !withinTolerance(subject.YearBuilt, c.YearBuilt, tol.YearBuilt) {
				continue
			}
			if !withinTolerance(subject.Sqft, c.Sqft, tol.Sqft) {
				continue
			}
			if !saleRecentEnough(c, tol.RecencyWindow, now) {
				continue
			}

			seen[c.ID] = struct{}{}
			admitted = append(admitted, Comp{
				CandidateRecord: c,
				DistanceMiles:   distance,
				Grade:           tier.Grade,
			})

			if len(admitted) >= tol.Cap {
				break
			}
		}
	}

	// Canonical output order; also the tie-break order for any downstream
	// representative pick.
	sort.SliceStable(admitted, func(i, j int) bool {
		return admitted[i].DistanceMiles < admitted[j].DistanceMiles
	})

	return admitted
}
