package domain

import "testing"

func TestAggregatePSF_ArithmeticMean(t *testing.T) {
	comps := []Comp{
		{CandidateRecord: CandidateRecord{ID: "a", SalePrice: 200000, Sqft: 1000}},
		{CandidateRecord: CandidateRecord{ID: "b", SalePrice: 300000, Sqft: 1500}},
	}

	comps, avg := AggregatePSF(comps)

	if comps[0].PricePerSqft != 200.0 {
		t.Fatalf("expected 200.00 psf, got %v", comps[0].PricePerSqft)
	}
	if comps[1].PricePerSqft != 200.0 {
		t.Fatalf("expected 200.00 psf, got %v", comps[1].PricePerSqft)
	}
	if avg != 200.0 {
		t.Fatalf("expected avg 200.0, got %v", avg)
	}
}

func TestAggregatePSF_RoundsToTwoDecimals(t *testing.T) {
	comps := []Comp{
		{CandidateRecord: CandidateRecord{ID: "a", SalePrice: 100000, Sqft: 3000}},
	}

	comps, avg := AggregatePSF(comps)

	if comps[0].PricePerSqft != 33.33 {
		t.Fatalf("expected 33.33 psf, got %v", comps[0].PricePerSqft)
	}
	if avg != 33.33 {
		t.Fatalf("expected avg 33.33, got %v", avg)
	}
}

func TestAggregatePSF_EmptySetIsZero(t *testing.T) {
	comps, avg := AggregatePSF(nil)
	if len(comps) != 0 {
		t.Fatalf("expected no comps, got %d", len(comps))
	}
	if avg != 0.0 {
		t.Fatalf("expected 0.0 average, got %v", avg)
	}
}

func TestAggregatePSF_SkipsUnpricedAndZeroArea(t *testing.T) {
	comps := []Comp{
		{CandidateRecord: CandidateRecord{ID: "no-price", SalePrice: 0, Sqft: 1200}},
		{CandidateRecord: CandidateRecord{ID: "no-area", SalePrice: 250000, Sqft: 0}},
		{CandidateRecord: CandidateRecord{ID: "ok", SalePrice: 150000, Sqft: 1000}},
	}

	comps, avg := AggregatePSF(comps)

	if comps[0].PricePerSqft != 0 || comps[1].PricePerSqft != 0 {
		t.Fatalf("unpriced comps must keep zero psf: %v, %v",
			comps[0].PricePerSqft, comps[1].PricePerSqft)
	}
	if avg != 150.0 {
		t.Fatalf("expected avg 150.0 from the single computable comp, got %v", avg)
	}
	if len(comps) != 3 {
		t.Fatalf("aggregation must not drop comps, got %d", len(comps))
	}
}

func TestAggregatePSF_AllUnpricedIsZeroNotNaN(t *testing.T) {
	comps := []Comp{
		{CandidateRecord: CandidateRecord{ID: "a"}},
		{CandidateRecord: CandidateRecord{ID: "b"}},
	}

	_, avg := AggregatePSF(comps)
	if avg != 0.0 {
		t.Fatalf("expected 0.0, got %v", avg)
	}
}
