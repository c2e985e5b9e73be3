package domain

import "math"

// round2 keeps a price-per-sqft to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AggregatePSF fills PricePerSqft on every comp with a known sale price and
// positive living area, and returns the arithmetic mean across those comps.
// An empty set, or a set with no computable PSF, yields 0.0 rather than an
// error: "no comparable sales found" is a valid outcome.
func AggregatePSF(comps []Comp) ([]Comp, float64) {
	var sum float64
	var n int

	for i := range comps {
		if comps[i].SalePrice <= 0 || comps[i].Sqft <= 0 {
			continue
		}
		psf := round2(float64(comps[i].SalePrice) / float64(comps[i].Sqft))
		comps[i].PricePerSqft = psf
		sum += psf
		n++
	}

	if n == 0 {
		return comps, 0.0
	}
	return comps, sum / float64(n)
}
