// Package transport defines the wire DTOs for the valuation API.
package transport

import (
	"fmt"

	"valuation_backend/internal/valuation/domain"
	"valuation_backend/internal/valuation/service"
	"valuation_backend/platform/sanitize"
)

// CompSummaryRequest represents the query parameters from the front end.
type CompSummaryRequest struct {
	Address string `form:"address" binding:"required,min=5"`
	// Sqft is the optional manual square-footage override.
	Sqft int `form:"sqft" binding:"omitempty,gt=0"`
}

// CompResponse is one admitted comparable as exposed to callers.
type CompResponse struct {
	Address       string   `json:"address"`
	SoldPrice     int      `json:"soldPrice"`
	Sqft          int      `json:"sqft"`
	PricePerSqft  *float64 `json:"pricePerSqft"`
	Beds          int      `json:"beds,omitempty"`
	Baths         int      `json:"baths,omitempty"`
	YearBuilt     int      `json:"yearBuilt,omitempty"`
	Grade         string   `json:"grade"`
	DistanceMiles float64  `json:"distanceMiles"`
	URL           string   `json:"url,omitempty"`
	LastSoldDate  string   `json:"lastSoldDate,omitempty"`
}

// CompSummaryResponse is the valuation output tuple.
type CompSummaryResponse struct {
	Address         string         `json:"address"`
	Comps           []CompResponse `json:"comps"`
	AvgPricePerSqft float64        `json:"avgPricePerSqft"`
	SubjectSqft     int            `json:"subjectSqft"`
}

// FromSummary maps the pipeline output to the wire shape.
func FromSummary(address string, summary service.Summary) CompSummaryResponse {
	comps := make([]CompResponse, 0, len(summary.Comps))
	for _, comp := range summary.Comps {
		comps = append(comps, fromComp(comp))
	}

	// The queried address is reflected back verbatim otherwise.
	return CompSummaryResponse{
		Address:         sanitize.Text(address),
		Comps:           comps,
		AvgPricePerSqft: summary.AveragePSF,
		SubjectSqft:     summary.SubjectSqft,
	}
}

func fromComp(comp domain.Comp) CompResponse {
	resp := CompResponse{
		Address:       comp.Address,
		SoldPrice:     comp.SalePrice,
		Sqft:          comp.Sqft,
		Beds:          comp.Beds,
		Baths:         comp.Baths,
		YearBuilt:     comp.YearBuilt,
		Grade:         comp.Grade,
		DistanceMiles: comp.DistanceMiles,
		URL:           referenceURL(comp),
	}

	if comp.PricePerSqft > 0 {
		psf := comp.PricePerSqft
		resp.PricePerSqft = &psf
	}
	if !comp.SaleDate.IsZero() {
		resp.LastSoldDate = comp.SaleDate.Format("2006-01-02")
	}

	return resp
}

// referenceURL derives a display link when the comp's identity maps to a
// public listing page. Convenience only; not required for valuation.
func referenceURL(comp domain.Comp) string {
	if comp.Source == "zillow" && comp.ID != "" {
		return fmt.Sprintf("https://www.zillow.com/homedetails/%s_zpid/", comp.ID)
	}
	return ""
}
