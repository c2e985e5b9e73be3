package service

import (
	"context"

	"valuation_backend/internal/valuation/domain"

	"golang.org/x/sync/errgroup"
)

// enrich fills sale price/date on admitted comps that lack them, from the
// sale-history source. The fetches are independent per comp, so they run
// concurrently. A failed or empty history leaves the comp priced at 0; it
// stays in the returned set but contributes nothing to the PSF average.
func (s *Service) enrich(ctx context.Context, comps []domain.Comp) {
	if s.src.SaleHistory == nil {
		return
	}

	log := s.log.WithContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for i := range comps {
		if comps[i].SalePrice > 0 || !comps[i].NeedsEnrichment {
			continue
		}

		comp := &comps[i]
		g.Go(func() error {
			events, err := s.src.SaleHistory.SaleHistory(gctx, comp.ID)
			if err != nil {
				log.ProviderDegraded("sale_history", "fetch", err)
				return nil
			}

			if latest, ok := latestSale(events); ok {
				comp.SalePrice = latest.Price
				comp.SaleDate = latest.Date
			}
			return nil
		})
	}
	_ = g.Wait()
}

// latestSale picks the sale event with the greatest date.
func latestSale(events []domain.SaleEvent) (domain.SaleEvent, bool) {
	var best domain.SaleEvent
	found := false
	for _, event := range events {
		if event.Price <= 0 {
			continue
		}
		if !found || event.Date.After(best.Date) {
			best = event
			found = true
		}
	}
	return best, found
}
