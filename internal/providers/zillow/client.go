// Package zillow implements the primary comp provider on top of the Zillow
// RapidAPI gateway. The upstream payloads are loosely shaped; every decoder
// here accepts the known key variants and normalizes into domain records.
package zillow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"valuation_backend/internal/valuation/domain"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
	"valuation_backend/platform/retry"
)

const sourceName = "zillow"

// Client calls the Zillow RapidAPI endpoints. Rate-limited responses are
// retried with exponential backoff; a 404 is "no data", not an error.
type Client struct {
	client  *http.Client
	host    string
	apiKey  string
	baseURL string
	retries int
	backoff time.Duration
	log     *logger.Logger
}

func NewClient(cfg config.ZillowConfig, log *logger.Logger) *Client {
	return &Client{
		client:  &http.Client{Timeout: cfg.GetProviderTimeout()},
		host:    cfg.GetZillowHost(),
		apiKey:  cfg.GetZillowAPIKey(),
		baseURL: "https://" + cfg.GetZillowHost(),
		retries: cfg.GetProviderRetryAttempts(),
		backoff: cfg.GetProviderRetryBaseDelay(),
		log:     log,
	}
}

// get performs one API call and decodes the body into out. A nil return with
// *found == false means the upstream had no data for the query.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any, found *bool) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	return retry.Do(ctx, c.retries, c.backoff, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-RapidAPI-Key", c.apiKey)
		req.Header.Set("X-RapidAPI-Host", c.host)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("zillow request failed: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		switch resp.StatusCode {
		case http.StatusOK:
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return fmt.Errorf("decode zillow payload: %w", err)
			}
			*found = true
			return nil
		case http.StatusNotFound:
			return nil
		case http.StatusTooManyRequests:
			_, _ = io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("zillow %s: %w", path, retry.ErrRateLimited)
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("zillow %s returned %d: %s", path, resp.StatusCode, string(body))
		}
	})
}

// SearchPropertyID resolves a free-text address to a zpid. The extended
// search endpoint is tried first, then the single-property endpoint. A miss
// on both is ("", nil) so the pipeline can fall back to location search.
func (c *Client) SearchPropertyID(ctx context.Context, address string) (string, error) {
	started := time.Now()

	params := url.Values{}
	params.Set("location", address)

	var payload searchResponse
	var found bool
	if err := c.get(ctx, "/propertyExtendedSearch", params, &payload, &found); err != nil {
		return "", err
	}
	c.log.ProviderCall(sourceName, "propertyExtendedSearch", time.Since(started), found)

	if id := searchID(payload); id != "" {
		return id, nil
	}

	params = url.Values{}
	params.Set("address", address)

	var property searchResponse
	found = false
	if err := c.get(ctx, "/property", params, &property, &found); err != nil {
		return "", err
	}
	return searchID(property), nil
}

func searchID(payload searchResponse) string {
	if payload.Zpid != "" {
		return string(payload.Zpid)
	}
	if payload.PropertyID != "" {
		return string(payload.PropertyID)
	}
	for _, hit := range payload.Props {
		if id := hit.id(); id != "" {
			return id
		}
	}
	for _, hit := range payload.SearchResults.List {
		if id := hit.id(); id != "" {
			return id
		}
	}
	return ""
}

// PropertyDetails fetches the subject attributes for a zpid. Missing fields
// stay zero; the caller merges them with other sources.
func (c *Client) PropertyDetails(ctx context.Context, id string) (domain.SubjectFacts, error) {
	params := url.Values{}
	params.Set("zpid", id)

	var payload compRecord
	var found bool
	if err := c.get(ctx, "/property", params, &payload, &found); err != nil {
		return domain.SubjectFacts{}, err
	}
	if !found {
		return domain.SubjectFacts{}, nil
	}

	info := payload.resolve()
	lat, lon := info.coordinates()
	return domain.SubjectFacts{
		Sqft:      info.sqft(),
		Beds:      int(info.Bedrooms),
		Baths:     int(info.Bathrooms),
		YearBuilt: info.YearBuilt,
		Lat:       lat,
		Lon:       lon,
	}, nil
}

// CompsByProperty fetches the comparables the provider associates with a
// zpid. Records carry attributes but no reliable sale data, so they are
// flagged for sale-history enrichment.
func (c *Client) CompsByProperty(ctx context.Context, id string, count int) ([]domain.CandidateRecord, error) {
	started := time.Now()

	params := url.Values{}
	params.Set("zpid", id)
	params.Set("count", fmt.Sprintf("%d", count))

	var payload compsResponse
	var found bool
	if err := c.get(ctx, "/propertyComps", params, &payload, &found); err != nil {
		return nil, err
	}

	raw := payload.records()
	c.log.ProviderCall(sourceName, "propertyComps", time.Since(started), len(raw) > 0)

	records := make([]domain.CandidateRecord, 0, len(raw))
	for _, rec := range raw {
		info := rec.resolve()
		lat, lon := info.coordinates()
		records = append(records, domain.CandidateRecord{
			ID:              info.id(),
			Source:          sourceName,
			Lat:             lat,
			Lon:             lon,
			Address:         string(info.Address),
			Sqft:            info.sqft(),
			Beds:            int(info.Bedrooms),
			Baths:           int(info.Bathrooms),
			YearBuilt:       info.YearBuilt,
			PropertyType:    info.propertyType(),
			NeedsEnrichment: true,
		})
	}
	return records, nil
}

// SaleHistory fetches the price history for a zpid filtered down to actual
// sale events, most recent data left to the caller to pick.
func (c *Client) SaleHistory(ctx context.Context, id string) ([]domain.SaleEvent, error) {
	params := url.Values{}
	params.Set("zpid", id)

	var payload priceHistoryResponse
	var found bool
	if err := c.get(ctx, "/priceAndTaxHistory", params, &payload, &found); err != nil {
		return nil, err
	}

	events := make([]domain.SaleEvent, 0, len(payload.PriceHistory))
	for _, event := range payload.PriceHistory {
		if !strings.Contains(strings.ToLower(event.Event), "sold") {
			continue
		}
		if event.Price <= 0 {
			continue
		}
		date, err := time.Parse("2006-01-02", event.Date)
		if err != nil {
			// An undated sale still prices the comp.
			date = time.Time{}
		}
		events = append(events, domain.SaleEvent{
			Price: int(event.Price),
			Date:  date,
		})
	}
	return events, nil
}
