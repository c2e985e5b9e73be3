package geocode

// LookupRequest represents the query parameters from the frontend.
type LookupRequest struct {
	Address string `form:"address" binding:"required,min=5"`
}

// Location is a resolved address with coordinates and structured components.
type Location struct {
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	City             string  `json:"city"`
	County           string  `json:"county"`
	State            string  `json:"state"`
	PostalCode       string  `json:"postalCode"`
	FormattedAddress string  `json:"formattedAddress"`
}

// googleResponse mirrors the relevant parts of the Google Geocoding payload.
type googleResponse struct {
	Status  string         `json:"status"`
	Results []googleResult `json:"results"`
}

type googleResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	AddressComponents []googleAddressComponent `json:"address_components"`
}

type googleAddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}
