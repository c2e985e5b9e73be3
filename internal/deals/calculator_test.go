package deals

import "testing"

func TestArvMultiplier_Bands(t *testing.T) {
	cases := []struct {
		arv  float64
		want float64
	}{
		{50_000, 0.55},
		{99_999, 0.55},
		{100_000, 0.65},
		{149_999, 0.65},
		{150_000, 0.70},
		{249_999, 0.70},
		{250_000, 0.75},
		{349_999, 0.75},
		{350_000, 0.80},
		{499_999, 0.80},
		{500_000, 0.85},
		{1_000_000, 0.85},
	}
	for _, tc := range cases {
		if got := arvMultiplier(tc.arv); got != tc.want {
			t.Errorf("arvMultiplier(%v) = %v, want %v", tc.arv, got, tc.want)
		}
	}
}

func TestCalculate_OfferMath(t *testing.T) {
	b := Calculate(300_000, 2)

	// 300000*0.75 - 20000 - 40000 = 165000
	if b.CashOffer != 165_000 {
		t.Fatalf("cash offer = %d, want 165000", b.CashOffer)
	}
	if b.RehabCost != 20_000 || b.Fee != 40_000 {
		t.Fatalf("unexpected costs: rehab=%d fee=%d", b.RehabCost, b.Fee)
	}
	// 300000*0.90 = 270000; offer nets out the fee.
	if b.AsIsValueRBP != 270_000 {
		t.Fatalf("as-is rbp = %v, want 270000", b.AsIsValueRBP)
	}
	if b.RBPOffer != 230_000 {
		t.Fatalf("rbp offer = %d, want 230000", b.RBPOffer)
	}
	// 300000*0.95 - 75000 = 210000
	if b.TakedownOffer != 210_000 {
		t.Fatalf("takedown offer = %d, want 210000", b.TakedownOffer)
	}
	if b.ARV != 300_000 {
		t.Fatalf("arv echoed wrong: %v", b.ARV)
	}
}

func TestCalculate_NegativeRehabLevelClamped(t *testing.T) {
	b := Calculate(200_000, -3)
	if b.RehabCost != 0 {
		t.Fatalf("expected clamped rehab cost, got %d", b.RehabCost)
	}
}

func TestCalculate_LowArvCanGoNegative(t *testing.T) {
	// A cheap house with heavy rehab produces a negative cash offer; the
	// calculator reports it rather than flooring, the caller decides.
	b := Calculate(80_000, 3)
	// 80000*0.55 - 30000 - 40000 = -26000
	if b.CashOffer != -26_000 {
		t.Fatalf("cash offer = %d, want -26000", b.CashOffer)
	}
}
