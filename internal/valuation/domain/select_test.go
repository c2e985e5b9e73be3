package domain

import (
	"fmt"
	"testing"
	"time"
)

const milesPerDegreeLat = 69.086

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testSubject() SubjectProfile {
	return SubjectProfile{
		Lat:       34.05,
		Lon:       -118.25,
		Sqft:      1500,
		Beds:      3,
		Baths:     2,
		YearBuilt: 1990,
	}
}

func testTolerances() Tolerances {
	return Tolerances{
		Cap:           3,
		Beds:          1,
		Baths:         1,
		YearBuilt:     20,
		Sqft:          500,
		RecencyWindow: 365 * 24 * time.Hour,
	}
}

// candidateAt builds a well-matched candidate roughly miles north of the
// test subject.
func candidateAt(id string, miles float64) CandidateRecord {
	return CandidateRecord{
		ID:        id,
		Source:    "zillow",
		Lat:       34.05 + miles/milesPerDegreeLat,
		Lon:       -118.25,
		Address:   id + " Test St",
		SalePrice: 300000,
		SaleDate:  testNow.AddDate(0, -3, 0),
		Sqft:      1500,
		Beds:      3,
		Baths:     2,
		YearBuilt: 1990,
	}
}

func TestSelect_CapsAtThreeAndSortsByDistance(t *testing.T) {
	// Scenario: five perfect matches inside the tightest ring.
	candidates := []CandidateRecord{
		candidateAt("c1", 0.9),
		candidateAt("c2", 0.2),
		candidateAt("c3", 0.6),
		candidateAt("c4", 0.4),
		candidateAt("c5", 0.8),
	}

	comps := Select(testSubject(), candidates, DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 3 {
		t.Fatalf("expected 3 comps, got %d", len(comps))
	}
	for _, comp := range comps {
		if comp.Grade != "A+" {
			t.Fatalf("expected grade A+ inside 1 mile, got %s", comp.Grade)
		}
	}
	for i := 1; i < len(comps); i++ {
		if comps[i].DistanceMiles < comps[i-1].DistanceMiles {
			t.Fatalf("comps not sorted by ascending distance: %v then %v",
				comps[i-1].DistanceMiles, comps[i].DistanceMiles)
		}
	}
}

func TestSelect_DeduplicatesByIdentity(t *testing.T) {
	dup := candidateAt("same", 0.5)
	comps := Select(testSubject(), []CandidateRecord{dup, dup, candidateAt("other", 0.7)},
		DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 2 {
		t.Fatalf("expected 2 comps after dedup, got %d", len(comps))
	}
	seen := map[string]bool{}
	for _, comp := range comps {
		if seen[comp.ID] {
			t.Fatalf("duplicate identity %s in output", comp.ID)
		}
		seen[comp.ID] = true
	}
}

func TestSelect_GradeMatchesAdmittingTier(t *testing.T) {
	candidates := []CandidateRecord{
		candidateAt("a", 0.5),
		candidateAt("b", 1.5),
		candidateAt("c", 2.5),
		candidateAt("d", 4.0),
		candidateAt("e", 8.0),
	}

	tol := testTolerances()
	tol.Cap = 5
	comps := Select(testSubject(), candidates, DefaultTiers(), tol, testNow)

	want := map[string]string{"a": "A+", "b": "B+", "c": "C+", "d": "D+", "e": "F"}
	radius := map[string]float64{"A+": 1, "B+": 2, "C+": 3, "D+": 5, "F": 10}
	if len(comps) != 5 {
		t.Fatalf("expected 5 comps, got %d", len(comps))
	}
	for _, comp := range comps {
		if comp.Grade != want[comp.ID] {
			t.Fatalf("comp %s: expected grade %s, got %s", comp.ID, want[comp.ID], comp.Grade)
		}
		if comp.DistanceMiles > radius[comp.Grade] {
			t.Fatalf("comp %s: distance %.2f exceeds tier radius %.0f",
				comp.ID, comp.DistanceMiles, radius[comp.Grade])
		}
	}
}

func TestSelect_WideTierFallback(t *testing.T) {
	// Scenario: nothing inside 5 miles, two matches inside 10.
	candidates := []CandidateRecord{
		candidateAt("far1", 7),
		candidateAt("far2", 9),
	}

	comps := Select(testSubject(), candidates, DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 2 {
		t.Fatalf("expected 2 comps, got %d", len(comps))
	}
	for _, comp := range comps {
		if comp.Grade != "F" {
			t.Fatalf("expected grade F beyond 5 miles, got %s", comp.Grade)
		}
	}
}

func TestSelect_BedsTolerance(t *testing.T) {
	tooMany := candidateAt("five-beds", 0.5)
	tooMany.Beds = 5
	borderline := candidateAt("four-beds", 0.5)
	borderline.Beds = 4

	comps := Select(testSubject(), []CandidateRecord{tooMany, borderline},
		DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 1 {
		t.Fatalf("expected 1 comp, got %d", len(comps))
	}
	if comps[0].ID != "four-beds" {
		t.Fatalf("expected the 4-bed candidate, got %s", comps[0].ID)
	}
}

func TestSelect_MissingSubjectFieldIsPermissive(t *testing.T) {
	subject := testSubject()
	subject.YearBuilt = 0

	for _, year := range []int{1900, 1955, 2020} {
		c := candidateAt(fmt.Sprintf("y%d", year), 0.5)
		c.YearBuilt = year
		comps := Select(subject, []CandidateRecord{c}, DefaultTiers(), testTolerances(), testNow)
		if len(comps) != 1 {
			t.Fatalf("candidate with year %d rejected despite unset subject year", year)
		}
	}
}

func TestSelect_SqftTolerance(t *testing.T) {
	tooBig := candidateAt("too-big", 0.5)
	tooBig.Sqft = 2101 // diff 601 > 500
	closeEnough := candidateAt("close", 0.5)
	closeEnough.Sqft = 1900

	comps := Select(testSubject(), []CandidateRecord{tooBig, closeEnough},
		DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 1 || comps[0].ID != "close" {
		t.Fatalf("expected only the close-sqft candidate, got %+v", comps)
	}
}

func TestSelect_RecencyWindow(t *testing.T) {
	stale := candidateAt("stale", 0.5)
	stale.SaleDate = testNow.AddDate(0, -14, 0)
	fresh := candidateAt("fresh", 0.5)
	fresh.SaleDate = testNow.AddDate(0, -3, 0)

	comps := Select(testSubject(), []CandidateRecord{stale, fresh},
		DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 1 || comps[0].ID != "fresh" {
		t.Fatalf("expected only the 3-month-old sale, got %+v", comps)
	}
}

func TestSelect_UnknownSaleDatePolicy(t *testing.T) {
	// A source that defers sale data to enrichment may omit the date; a
	// source that carries price+date may not.
	pending := candidateAt("pending", 0.5)
	pending.SalePrice = 0
	pending.SaleDate = time.Time{}
	pending.NeedsEnrichment = true

	complete := candidateAt("incomplete", 0.7)
	complete.SaleDate = time.Time{}
	complete.NeedsEnrichment = false

	comps := Select(testSubject(), []CandidateRecord{pending, complete},
		DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 1 || comps[0].ID != "pending" {
		t.Fatalf("expected only the enrichable candidate, got %+v", comps)
	}
}

func TestSelect_NonResidentialExcluded(t *testing.T) {
	condo := candidateAt("condo", 0.5)
	condo.PropertyType = "CONDO"
	lot := candidateAt("lot", 0.5)
	lot.PropertyType = "LOT"
	sfr := candidateAt("sfr", 0.5)
	sfr.PropertyType = "SINGLE_FAMILY"
	unknown := candidateAt("unknown", 0.6)
	unknown.PropertyType = ""

	comps := Select(testSubject(), []CandidateRecord{condo, lot, sfr, unknown},
		DefaultTiers(), testTolerances(), testNow)

	if len(comps) != 2 {
		t.Fatalf("expected 2 comps, got %d", len(comps))
	}
	if comps[0].ID != "sfr" || comps[1].ID != "unknown" {
		t.Fatalf("unexpected admissions: %s, %s", comps[0].ID, comps[1].ID)
	}
}

func TestSelect_EmptyPoolIsValid(t *testing.T) {
	comps := Select(testSubject(), nil, DefaultTiers(), testTolerances(), testNow)
	if len(comps) != 0 {
		t.Fatalf("expected empty result, got %d", len(comps))
	}
}

func TestSelect_TightTierWinsOverStableOrder(t *testing.T) {
	// A far candidate listed first must not steal a slot from a close one:
	// tiers are visited tightest first across the whole pool.
	far := candidateAt("far", 4)
	near := candidateAt("near", 0.3)

	tol := testTolerances()
	tol.Cap = 1
	comps := Select(testSubject(), []CandidateRecord{far, near}, DefaultTiers(), tol, testNow)

	if len(comps) != 1 || comps[0].ID != "near" {
		t.Fatalf("expected the near candidate to win the only slot, got %+v", comps)
	}
}
