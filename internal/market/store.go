// Package market serves metro-level market conditions from a bundled
// reventure CSV export, keyed by county and state.
package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Record is one metro row from the dataset. Values stay strings because the
// export mixes formatted numbers ("1.2M"), percentages and "45+" style
// figures; only days-on-market is ever interpreted numerically.
type Record struct {
	Market          string `json:"market"`
	Population      string `json:"population"`
	HomeValueGrowth string `json:"homeValueGrowthYoy"`
	HomeValue       string `json:"homeValue"`
	PriceCutPct     string `json:"priceCutPct"`
	DaysOnMarket    string `json:"daysOnMarket"`
}

type storeRow struct {
	normalized string
	record     Record
}

// Store holds the metro dataset in memory. Loaded once at startup; lookups
// are read-only and safe for concurrent use.
type Store struct {
	rows []storeRow
}

// LoadStore reads the metro CSV. Expected columns: Name, Population,
// Home Value Growth (YoY), Home Value, Price Cut %, Days on Market.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open market data: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse market data: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("market data %s has no header row", path)
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	store := &Store{rows: make([]storeRow, 0, len(records)-1)}
	for _, row := range records[1:] {
		name := field(row, "Name")
		if name == "" {
			continue
		}
		store.rows = append(store.rows, storeRow{
			normalized: normalize(name),
			record: Record{
				Market:          name,
				Population:      field(row, "Population"),
				HomeValueGrowth: field(row, "Home Value Growth (YoY)"),
				HomeValue:       field(row, "Home Value"),
				PriceCutPct:     field(row, "Price Cut %"),
				DaysOnMarket:    field(row, "Days on Market"),
			},
		})
	}
	return store, nil
}

// Lookup matches a county/state pair against the metro names. Metro names
// look like "Riverside, CA"; matching is substring-based on the first word
// of the county and the two-letter state. A miss returns a synthetic record
// with unknown figures rather than an error.
func (s *Store) Lookup(county, state string) Record {
	countyNorm := firstWord(normalize(county))
	stateNorm := normalize(state)
	if len(stateNorm) > 2 {
		stateNorm = stateNorm[:2]
	}

	if countyNorm != "" && stateNorm != "" {
		for _, row := range s.rows {
			if strings.Contains(row.normalized, countyNorm) && strings.Contains(row.normalized, stateNorm) {
				return row.record
			}
		}
	}

	name := strings.ToUpper(state)
	if county != "" {
		name = fmt.Sprintf("%s, %s", titleCase(county), name)
	}

	unknown := "Unknown"
	return Record{
		Market:          name,
		Population:      unknown,
		HomeValueGrowth: unknown,
		HomeValue:       unknown,
		PriceCutPct:     unknown,
		DaysOnMarket:    unknown,
	}
}

// Temperature maps a days-on-market figure to a cold/warm/hot label.
// Unparseable input defaults to warm.
func Temperature(daysOnMarket string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(daysOnMarket, "+", ""))
	dom, err := strconv.Atoi(cleaned)
	if err != nil {
		return "warm"
	}
	switch {
	case dom > 60:
		return "cold"
	case dom < 30:
		return "hot"
	default:
		return "warm"
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func titleCase(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	for i, word := range fields {
		fields[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(fields, " ")
}
