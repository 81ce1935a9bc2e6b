package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// WeatherQuery identifies a place either by name or by coordinates.
// Lat and Lon are kept as the caller sent them and forwarded verbatim.
type WeatherQuery struct {
	City string
	Lat  string
	Lon  string
}

// WeatherSnapshot is the provider's current-conditions payload, passed through unmodified
type WeatherSnapshot = json.RawMessage

// HasCity reports whether the query names a place
func (q WeatherQuery) HasCity() bool {
	return strings.TrimSpace(q.City) != ""
}

// Validate checks that exactly one usable form is present. A city wins when both are given.
func (q WeatherQuery) Validate() error {
	if q.HasCity() {
		return nil
	}
	if q.Lat == "" || q.Lon == "" {
		return ErrInvalidQuery
	}
	if _, err := strconv.ParseFloat(q.Lat, 64); err != nil {
		return ErrInvalidQuery
	}
	if _, err := strconv.ParseFloat(q.Lon, 64); err != nil {
		return ErrInvalidQuery
	}
	return nil
}
