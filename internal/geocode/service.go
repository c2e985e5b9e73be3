package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"valuation_backend/platform/apperr"
	"valuation_backend/platform/config"
	"valuation_backend/platform/logger"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Service resolves free-text addresses to coordinates via Google Maps.
type Service struct {
	client  *http.Client
	apiKey  string
	region  string
	baseURL string
	log     *logger.Logger
}

func NewService(cfg config.GeocodeConfig, log *logger.Logger) *Service {
	timeout := cfg.GetProviderTimeout()
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Service{
		client:  &http.Client{Timeout: timeout},
		apiKey:  cfg.GetGoogleMapsAPIKey(),
		region:  cfg.GetGeocodeRegion(),
		baseURL: googleGeocodeURL,
		log:     log,
	}
}

// Resolve geocodes the address and returns the best match. Every downstream
// distance computation depends on this, so a miss is a typed NotFound error
// rather than a zero-valued Location.
func (s *Service) Resolve(ctx context.Context, address string) (Location, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("region", s.region)
	params.Set("key", s.apiKey)

	reqURL := fmt.Sprintf("%s?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("geocode request failed", "error", err)
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "geocoding service unreachable", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("geocode upstream error", "status", resp.StatusCode)
		return Location{}, apperr.Unavailable(fmt.Sprintf("geocoding upstream error: %d", resp.StatusCode))
	}

	var payload googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		s.log.Error("failed to decode geocode payload", "error", err)
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "invalid geocoding payload", err)
	}

	if len(payload.Results) == 0 {
		return Location{}, apperr.NotFound("could not locate address: " + address)
	}

	return buildLocation(payload.Results[0]), nil
}

func buildLocation(result googleResult) Location {
	loc := Location{
		Lat:              result.Geometry.Location.Lat,
		Lon:              result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
	}

	for _, comp := range result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				loc.City = comp.LongName
			case "administrative_area_level_2":
				loc.County = comp.LongName
			case "administrative_area_level_1":
				loc.State = comp.ShortName
			case "postal_code":
				loc.PostalCode = comp.LongName
			}
		}
	}

	return loc
}
