// Package geo extracts GPS coordinates from inbound WhatsApp messages, either
// from a native location attachment or from a Google Maps share link pasted
// into a text message.
package geo

import (
	"regexp"
	"strconv"

	"khojo/internal/errors"
)

// ErrOutOfRange is returned when a coordinate pair falls outside the valid
// latitude/longitude ranges.
var ErrOutOfRange = errors.New("coordinates out of range")

// Location is a coordinate pair with the optional place metadata WhatsApp
// attaches to native location shares.
type Location struct {
	Lat     float64
	Lng     float64
	Name    string
	Address string
}

// Maps share links come in three shapes. Order matters: the "@lat,lng"
// fragment wins over a "?q=lat,lng" query in the same URL.
var mapsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`@(-?\d*\.\d+),(-?\d*\.\d+)`),
	regexp.MustCompile(`[?&]q=(-?\d*\.\d+),(-?\d*\.\d+)`),
	regexp.MustCompile(`/place/[^@]+@(-?\d*\.\d+),(-?\d*\.\d+)`),
}

// InRange reports whether lat/lng form a valid WGS84 coordinate.
func InRange(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// FromNative builds a Location from a native location attachment's fields.
func FromNative(lat, lng float64, name, address string) (Location, error) {
	if !InRange(lat, lng) {
		return Location{}, errors.Wrapf(ErrOutOfRange, "lat=%v lng=%v", lat, lng)
	}

	return Location{Lat: lat, Lng: lng, Name: name, Address: address}, nil
}

// FromMapsURL scans text for a maps-link coordinate pair. Patterns are tried
// in order and the first in-range match wins; an out-of-range match falls
// through to the next pattern. Returns false when nothing usable is found, in
// which case the message is not a location update.
func FromMapsURL(text string) (Location, bool) {
	for _, pattern := range mapsPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		lat, latErr := strconv.ParseFloat(match[1], 64)
		lng, lngErr := strconv.ParseFloat(match[2], 64)
		if latErr != nil || lngErr != nil || !InRange(lat, lng) {
			continue
		}

		return Location{Lat: lat, Lng: lng}, true
	}

	return Location{}, false
}
