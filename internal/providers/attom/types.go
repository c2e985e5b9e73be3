package attom

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// flexNumber decodes a numeric field that the gateway serves as either a
// JSON number or a quoted string.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexNumber(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexNumber(v)
	return nil
}

type detailResponse struct {
	Property []struct {
		Structure struct {
			ActualSize struct {
				TotalLivingArea flexNumber `json:"totalLivingArea"`
				LivingArea      flexNumber `json:"livingArea"`
			} `json:"actualSize"`
		} `json:"structure"`
		Building buildingInfo `json:"building"`
		Summary  summaryInfo  `json:"summary"`
	} `json:"property"`
}

type snapshotResponse struct {
	Property []snapshotProperty `json:"property"`
}

type snapshotProperty struct {
	Identifier struct {
		AttomID flexNumber `json:"attomId"`
		ID      flexNumber `json:"Id"`
	} `json:"identifier"`
	Location struct {
		Latitude  flexNumber `json:"latitude"`
		Longitude flexNumber `json:"longitude"`
	} `json:"location"`
	Address struct {
		OneLine string `json:"oneLine"`
	} `json:"address"`
	Building buildingInfo `json:"building"`
	Summary  summaryInfo  `json:"summary"`
	Sale     struct {
		Amount struct {
			SaleAmt flexNumber `json:"saleAmt"`
		} `json:"amount"`
		SaleTransDate string `json:"saleTransDate"`
	} `json:"sale"`
}

type buildingInfo struct {
	Size struct {
		LivingSize    flexNumber `json:"livingSize"`
		UniversalSize flexNumber `json:"universalSize"`
	} `json:"size"`
	Rooms struct {
		Beds       flexNumber `json:"beds"`
		BathsTotal flexNumber `json:"bathsTotal"`
	} `json:"rooms"`
}

type summaryInfo struct {
	YearBuilt flexNumber `json:"yearBuilt"`
	PropType  string     `json:"propType"`
	PropClass string     `json:"propClass"`
}
