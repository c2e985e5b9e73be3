package zillow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// flexID decodes a provider identifier that arrives as either a JSON string
// or a JSON number, depending on the endpoint.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// flexAddress decodes an address that arrives as either a plain string or a
// structured object.
type flexAddress string

func (f *flexAddress) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexAddress(s)
		return nil
	}

	var structured struct {
		StreetAddress string `json:"streetAddress"`
		City          string `json:"city"`
		State         string `json:"state"`
		Zipcode       string `json:"zipcode"`
	}
	if err := json.Unmarshal(data, &structured); err != nil {
		return err
	}

	parts := make([]string, 0, 3)
	if structured.StreetAddress != "" {
		parts = append(parts, structured.StreetAddress)
	}
	if structured.City != "" {
		parts = append(parts, structured.City)
	}
	regional := strings.TrimSpace(fmt.Sprintf("%s %s", structured.State, structured.Zipcode))
	if regional != "" {
		parts = append(parts, regional)
	}
	*f = flexAddress(strings.Join(parts, ", "))
	return nil
}

type latLong struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// homeInfo is the shared property shape. The same fields surface under
// different keys across endpoints, so alternates are decoded side by side
// and resolved during normalization.
type homeInfo struct {
	Zpid       flexID      `json:"zpid"`
	PropertyID flexID      `json:"property_id"`
	RecordID   flexID      `json:"id"`
	Address    flexAddress `json:"address"`

	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	LatLong   *latLong `json:"latLong"`

	LivingArea   float64 `json:"livingArea"`
	HomeSize     float64 `json:"homeSize"`
	BuildingSize float64 `json:"buildingSize"`

	Bedrooms  float64 `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	YearBuilt int     `json:"yearBuilt"`

	HomeType     string `json:"homeType"`
	PropertyType string `json:"propertyType"`
}

func (h homeInfo) id() string {
	for _, candidate := range []flexID{h.Zpid, h.PropertyID, h.RecordID} {
		if candidate != "" {
			return string(candidate)
		}
	}
	return ""
}

func (h homeInfo) coordinates() (float64, float64) {
	if h.Latitude != 0 || h.Longitude != 0 {
		return h.Latitude, h.Longitude
	}
	if h.LatLong != nil {
		return h.LatLong.Latitude, h.LatLong.Longitude
	}
	return 0, 0
}

func (h homeInfo) sqft() int {
	for _, candidate := range []float64{h.LivingArea, h.HomeSize, h.BuildingSize} {
		if candidate > 0 {
			return int(candidate)
		}
	}
	return 0
}

func (h homeInfo) propertyType() string {
	if h.HomeType != "" {
		return h.HomeType
	}
	return h.PropertyType
}

// compRecord wraps one comparable entry. The meaningful payload sits at the
// root, under homeInfo, or under hdpData.homeInfo depending on the plan tier
// of the upstream API.
type compRecord struct {
	homeInfo
	NestedHomeInfo *homeInfo `json:"homeInfo"`
	HdpData        *struct {
		HomeInfo *homeInfo `json:"homeInfo"`
	} `json:"hdpData"`
}

func (r compRecord) resolve() homeInfo {
	if r.HdpData != nil && r.HdpData.HomeInfo != nil {
		return *r.HdpData.HomeInfo
	}
	if r.NestedHomeInfo != nil {
		return *r.NestedHomeInfo
	}
	return r.homeInfo
}

type searchHit struct {
	Zpid       flexID `json:"zpid"`
	PropertyID flexID `json:"property_id"`
	RecordID   flexID `json:"id"`
}

func (h searchHit) id() string {
	for _, candidate := range []flexID{h.Zpid, h.PropertyID, h.RecordID} {
		if candidate != "" {
			return string(candidate)
		}
	}
	return ""
}

type searchResponse struct {
	Zpid       flexID      `json:"zpid"`
	PropertyID flexID      `json:"property_id"`
	Props      []searchHit `json:"props"`

	SearchResults struct {
		List []searchHit `json:"list"`
	} `json:"searchResults"`
}

type compsResponse struct {
	CompResults []compRecord `json:"compResults"`
	Comps       []compRecord `json:"comps"`
	Comparables []compRecord `json:"comparables"`
	Results     []compRecord `json:"results"`
}

func (r compsResponse) records() []compRecord {
	for _, candidates := range [][]compRecord{r.CompResults, r.Comps, r.Comparables, r.Results} {
		if len(candidates) > 0 {
			return candidates
		}
	}
	return nil
}

type priceHistoryResponse struct {
	PriceHistory []priceEvent `json:"priceHistory"`
}

type priceEvent struct {
	Event string  `json:"event"`
	Price float64 `json:"price"`
	Date  string  `json:"date"`
}
