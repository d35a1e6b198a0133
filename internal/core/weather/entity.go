package weather

import (
	"fmt"
	"strings"
)

// Units is the unit system requested from the provider
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// IsValid reports whether the unit system is supported
func (u Units) IsValid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// Symbol returns the temperature suffix for the unit system
func (u Units) Symbol() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// ParseUnits converts a string into Units. An empty string yields the fallback.
func ParseUnits(s string, fallback Units) (Units, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	units := Units(s)
	if !units.IsValid() {
		return "", fmt.Errorf("unsupported units %q", s)
	}
	return units, nil
}

// WeatherRequest represents a request for weather information
type WeatherRequest struct {
	City  string
	Days  int
	Units Units
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if strings.TrimSpace(wr.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if wr.Units != "" && !wr.Units.IsValid() {
		return fmt.Errorf("unsupported units %q", wr.Units)
	}
	return nil
}

// Normalize trims the city and fills defaults for days and units
func (wr *WeatherRequest) Normalize(defaultUnits Units) {
	wr.City = strings.TrimSpace(wr.City)
	if wr.Days < 1 {
		wr.Days = 1
	}
	if wr.Units == "" {
		wr.Units = defaultUnits
	}
}

// CacheKey is the canonical cache key for a normalized request
func (wr *WeatherRequest) CacheKey() string {
	return fmt.Sprintf("weather:%s-%d-%s", wr.City, wr.Days, wr.Units)
}

// Slot is a time-of-day bucket used to summarize forecasts
type Slot int

const (
	SlotMorning Slot = iota
	SlotNoon
	SlotEvening
	SlotNight
)

// slotOrder is the order slots are emitted within a day
var slotOrder = []Slot{SlotMorning, SlotNoon, SlotEvening, SlotNight}

// SlotForHour maps an hour of day to its slot
func SlotForHour(hour int) Slot {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotNoon
	case hour >= 18 && hour < 24:
		return SlotEvening
	default:
		return SlotNight
	}
}

// Source identifies where a report's text came from
type Source string

const (
	SourceCache    Source = "cache"
	SourceProvider Source = "provider"
	SourceScrape   Source = "scrape"
	SourceNone     Source = "none"
)

// OutcomeKind tags the result of a retrieval step
type OutcomeKind int

const (
	// OutcomeData means usable weather text was produced
	OutcomeData OutcomeKind = iota
	// OutcomeNoData means the upstream answered without usable data
	OutcomeNoData
	// OutcomeFailed means the infrastructure behind the step broke
	OutcomeFailed
)

// String returns the metrics label for the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeData:
		return "data"
	case OutcomeNoData:
		return "no_data"
	default:
		return "failed"
	}
}

// Outcome is the tagged result of one retrieval step
type Outcome struct {
	Kind   OutcomeKind
	Text   string
	Source Source
	Err    error
}

// HasData reports whether the outcome carries weather text
func (o Outcome) HasData() bool {
	return o.Kind == OutcomeData
}

// Report is the resolved answer handed back to the caller
type Report struct {
	City   string
	Days   int
	Units  Units
	Text   string
	Source Source
	Cached bool
}
