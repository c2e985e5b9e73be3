// Package attom implements the supplementary property source and the
// location-keyed sale fallback on top of the ATTOM Data property API.
package attom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"valuation_backend/internal/valuation/domain"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
	"valuation_backend/platform/retry"
)

const (
	sourceName     = "attom"
	defaultBaseURL = "https://api.gateway.attomdata.com/propertyapi/v1.0.0"
)

// Client calls the ATTOM gateway. Authentication is a plain apikey header.
type Client struct {
	client  *http.Client
	apiKey  string
	baseURL string
	retries int
	backoff time.Duration
	log     *logger.Logger
}

func NewClient(cfg config.AttomConfig, log *logger.Logger) *Client {
	return &Client{
		client:  &http.Client{Timeout: cfg.GetProviderTimeout()},
		apiKey:  cfg.GetAttomAPIKey(),
		baseURL: defaultBaseURL,
		retries: cfg.GetProviderRetryAttempts(),
		backoff: cfg.GetProviderRetryBaseDelay(),
		log:     log,
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any, found *bool) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	return retry.Do(ctx, c.retries, c.backoff, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("attom request failed: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		switch resp.StatusCode {
		case http.StatusOK:
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decode attom payload: %w", err)
			}
			*found = true
			return nil
		case http.StatusNotFound:
			return nil
		case http.StatusTooManyRequests:
			_, _ = io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("attom %s: %w", path, retry.ErrRateLimited)
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("attom %s returned %d: %s", path, resp.StatusCode, string(body))
		}
	})
}

// PropertyFacts fetches subject attributes by structured address. The living
// area sits under structure.actualSize with two possible keys; room counts
// and year come from the building/summary blocks when present.
func (c *Client) PropertyFacts(ctx context.Context, street, city, state, zip string) (domain.SubjectFacts, error) {
	started := time.Now()

	params := url.Values{}
	params.Set("address1", street)
	params.Set("address2", "")
	params.Set("address3", city)
	params.Set("state", state)
	params.Set("postalcode", zip)

	var payload detailResponse
	var found bool
	if err := c.get(ctx, "/property/detail", params, &payload, &found); err != nil {
		return domain.SubjectFacts{}, err
	}
	c.log.ProviderCall(sourceName, "property_detail", time.Since(started), found && len(payload.Property) > 0)

	if len(payload.Property) == 0 {
		return domain.SubjectFacts{}, nil
	}

	prop := payload.Property[0]
	sqft := float64(prop.Structure.ActualSize.TotalLivingArea)
	if sqft == 0 {
		sqft = float64(prop.Structure.ActualSize.LivingArea)
	}
	if sqft == 0 {
		sqft = buildingSqft(prop.Building)
	}

	return domain.SubjectFacts{
		Sqft:      int(sqft),
		Beds:      int(prop.Building.Rooms.Beds),
		Baths:     int(prop.Building.Rooms.BathsTotal),
		YearBuilt: int(prop.Summary.YearBuilt),
	}, nil
}

// CompsByLocation fetches recorded sales around a coordinate. Unlike the
// primary provider these records carry the sale price and date directly, so
// they are not flagged for enrichment.
func (c *Client) CompsByLocation(ctx context.Context, lat, lon, radiusMiles float64, limit int) ([]domain.CandidateRecord, error) {
	started := time.Now()

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("radius", strconv.FormatFloat(radiusMiles, 'f', -1, 64))
	params.Set("pageSize", strconv.Itoa(limit))

	var payload snapshotResponse
	var found bool
	if err := c.get(ctx, "/sale/snapshot", params, &payload, &found); err != nil {
		return nil, err
	}
	c.log.ProviderCall(sourceName, "sale_snapshot", time.Since(started), len(payload.Property) > 0)

	records := make([]domain.CandidateRecord, 0, len(payload.Property))
	for _, prop := range payload.Property {
		id := attomID(prop)
		saleDate, _ := time.Parse("2006-01-02", prop.Sale.SaleTransDate)
		records = append(records, domain.CandidateRecord{
			ID:           id,
			Source:       sourceName,
			Lat:          float64(prop.Location.Latitude),
			Lon:          float64(prop.Location.Longitude),
			Address:      prop.Address.OneLine,
			SalePrice:    int(prop.Sale.Amount.SaleAmt),
			SaleDate:     saleDate,
			Sqft:         int(buildingSqft(prop.Building)),
			Beds:         int(prop.Building.Rooms.Beds),
			Baths:        int(prop.Building.Rooms.BathsTotal),
			YearBuilt:    int(prop.Summary.YearBuilt),
			PropertyType: propertyType(prop.Summary),
		})
	}
	return records, nil
}

func attomID(prop snapshotProperty) string {
	if prop.Identifier.AttomID != 0 {
		return strconv.FormatInt(int64(prop.Identifier.AttomID), 10)
	}
	if prop.Identifier.ID != 0 {
		return strconv.FormatInt(int64(prop.Identifier.ID), 10)
	}
	return ""
}

func buildingSqft(b buildingInfo) float64 {
	if b.Size.LivingSize > 0 {
		return float64(b.Size.LivingSize)
	}
	return float64(b.Size.UniversalSize)
}

func propertyType(s summaryInfo) string {
	if s.PropType != "" {
		return s.PropType
	}
	return s.PropClass
}
