package attom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valuation_backend/platform/logger"
)

type fakeAttomConfig struct{}

func (fakeAttomConfig) GetAttomAPIKey() string                   { return "test-key" }
func (fakeAttomConfig) GetProviderTimeout() time.Duration        { return 5 * time.Second }
func (fakeAttomConfig) GetProviderRetryAttempts() int            { return 3 }
func (fakeAttomConfig) GetProviderRetryBaseDelay() time.Duration { return time.Millisecond }
func (fakeAttomConfig) IsAttomEnabled() bool                     { return true }

func newTestClient(baseURL string) *Client {
	c := NewClient(fakeAttomConfig{}, logger.New("development"))
	c.baseURL = baseURL
	return c
}

func TestPropertyFacts_TotalLivingArea(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/property/detail" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("apikey"); got != "test-key" {
			t.Fatalf("missing apikey header, got %q", got)
		}
		q := r.URL.Query()
		if q.Get("address1") != "1705 Magnolia Ave" || q.Get("postalcode") != "92411" {
			t.Fatalf("unexpected query: %v", q)
		}
		w.Write([]byte(`{"property":[{
			"structure": {"actualSize": {"totalLivingArea": "1424"}},
			"building": {"rooms": {"beds": 3, "bathsTotal": 2}},
			"summary": {"yearBuilt": 1955}
		}]}`))
	}))
	defer server.Close()

	facts, err := newTestClient(server.URL).PropertyFacts(context.Background(),
		"1705 Magnolia Ave", "San Bernardino", "CA", "92411")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facts.Sqft != 1424 {
		t.Fatalf("expected sqft 1424, got %d", facts.Sqft)
	}
	if facts.Beds != 3 || facts.Baths != 2 || facts.YearBuilt != 1955 {
		t.Fatalf("unexpected facts: %+v", facts)
	}
}

func TestPropertyFacts_LivingAreaFallbackKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"property":[{"structure": {"actualSize": {"livingArea": 980}}}]}`))
	}))
	defer server.Close()

	facts, err := newTestClient(server.URL).PropertyFacts(context.Background(), "1 Elm St", "Town", "CA", "90000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facts.Sqft != 980 {
		t.Fatalf("expected fallback key sqft 980, got %d", facts.Sqft)
	}
}

func TestPropertyFacts_EmptyResultIsZeroNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"property":[]}`))
	}))
	defer server.Close()

	facts, err := newTestClient(server.URL).PropertyFacts(context.Background(), "1 Elm St", "Town", "CA", "90000")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if facts.Sqft != 0 {
		t.Fatalf("expected zero facts, got %+v", facts)
	}
}

func TestCompsByLocation_ParsesSnapshotSales(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sale/snapshot" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "34.05" || q.Get("radius") != "10" || q.Get("pageSize") != "50" {
			t.Fatalf("unexpected query: %v", q)
		}
		w.Write([]byte(`{"property":[{
			"identifier": {"attomId": 184713191},
			"location": {"latitude": "34.0601", "longitude": "-118.2584"},
			"address": {"oneLine": "10 OAK AVE, LOS ANGELES, CA 90012"},
			"building": {"size": {"universalSize": 1450}, "rooms": {"beds": 3, "bathsTotal": "2"}},
			"summary": {"yearBuilt": 1962, "propType": "SFR"},
			"sale": {"amount": {"saleAmt": 415000}, "saleTransDate": "2025-02-14"}
		}]}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).CompsByLocation(context.Background(), 34.05, -118.25, 10, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.ID != "184713191" || rec.Source != "attom" {
		t.Fatalf("unexpected identity: %+v", rec)
	}
	if rec.Lat != 34.0601 || rec.Lon != -118.2584 {
		t.Fatalf("string coordinates not parsed: %v,%v", rec.Lat, rec.Lon)
	}
	if rec.SalePrice != 415000 {
		t.Fatalf("expected sale price 415000, got %d", rec.SalePrice)
	}
	want := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	if !rec.SaleDate.Equal(want) {
		t.Fatalf("expected sale date %v, got %v", want, rec.SaleDate)
	}
	if rec.NeedsEnrichment {
		t.Fatal("snapshot records carry sale data and must not need enrichment")
	}
	if rec.Sqft != 1450 || rec.Beds != 3 || rec.Baths != 2 || rec.YearBuilt != 1962 {
		t.Fatalf("unexpected attributes: %+v", rec)
	}
	if rec.PropertyType != "SFR" {
		t.Fatalf("unexpected property type %q", rec.PropertyType)
	}
}

func TestCompsByLocation_RetriesRateLimit(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"property":[]}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).CompsByLocation(context.Background(), 34.05, -118.25, 10, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty pool, got %d", len(records))
	}
	if calls != 2 {
		t.Fatalf("expected one retry, got %d calls", calls)
	}
}
