// Package deals computes acquisition offers from a comp-derived ARV.
package deals

// Offer economics. The assignment fee is flat; rehab cost scales with the
// caller-supplied level because condition reports arrive as a 1..N grade,
// not an itemized scope.
const (
	assignmentFee   = 40000
	rehabCostPerLvl = 10000
	takedownCost    = 75000

	rbpRatio      = 0.90
	takedownRatio = 0.95
)

// Breakdown holds the offer numbers for the three exit strategies.
type Breakdown struct {
	ARV           float64 `json:"arv"`
	RehabCost     int     `json:"rehabCost"`
	Fee           int     `json:"fee"`
	AsIsValueRBP  float64 `json:"asIsValueRbp"`
	CashOffer     int     `json:"cashOffer"`
	RBPOffer      int     `json:"rbpOffer"`
	TakedownOffer int     `json:"takedownOffer"`
}

// arvMultiplier returns the cash-offer discount for an ARV band. Cheaper
// houses carry proportionally higher transaction risk, so the band ladder
// steps the multiplier up with value.
func arvMultiplier(arv float64) float64 {
	switch {
	case arv < 100_000:
		return 0.55
	case arv < 150_000:
		return 0.65
	case arv < 250_000:
		return 0.70
	case arv < 350_000:
		return 0.75
	case arv < 500_000:
		return 0.80
	default:
		return 0.85
	}
}

// Calculate prices the three strategies for a given ARV and rehab level.
// The as-is value for the retail path equals the ARV in this model.
func Calculate(arv float64, rehabLevel int) Breakdown {
	if rehabLevel < 0 {
		rehabLevel = 0
	}
	rehabCost := rehabCostPerLvl * rehabLevel

	cash := arv*arvMultiplier(arv) - float64(rehabCost) - assignmentFee
	rbp := arv * rbpRatio
	takedown := arv*takedownRatio - takedownCost

	return Breakdown{
		ARV:           arv,
		RehabCost:     rehabCost,
		Fee:           assignmentFee,
		AsIsValueRBP:  rbp,
		CashOffer:     int(cash),
		RBPOffer:      int(rbp - assignmentFee),
		TakedownOffer: int(takedown),
	}
}
