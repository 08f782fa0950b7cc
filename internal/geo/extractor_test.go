package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNative(t *testing.T) {
	loc, err := FromNative(23.0225, 72.5714, "Manek Chowk", "Ahmedabad, Gujarat")
	require.NoError(t, err)
	assert.Equal(t, 23.0225, loc.Lat)
	assert.Equal(t, 72.5714, loc.Lng)
	assert.Equal(t, "Manek Chowk", loc.Name)
	assert.Equal(t, "Ahmedabad, Gujarat", loc.Address)

	_, err = FromNative(999.0, 72.5714, "", "")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = FromNative(23.0225, -181.0, "", "")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFromMapsURL(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{
			name:    "at fragment",
			text:    "Check out my stall: https://maps.google.com/@23.0225,72.5714,15z",
			wantLat: 23.0225,
			wantLng: 72.5714,
			wantOK:  true,
		},
		{
			name:    "query form",
			text:    "https://maps.google.com/?q=23.0225,72.5714",
			wantLat: 23.0225,
			wantLng: 72.5714,
			wantOK:  true,
		},
		{
			name:    "place form",
			text:    "https://www.google.com/maps/place/Manek+Chowk@23.0300,72.5800",
			wantLat: 23.03,
			wantLng: 72.58,
			wantOK:  true,
		},
		{
			name:    "negative coordinates",
			text:    "https://maps.google.com/@-33.8688,151.2093,12z",
			wantLat: -33.8688,
			wantLng: 151.2093,
			wantOK:  true,
		},
		{
			name:   "out of range is not a location",
			text:   "https://maps.google.com/@999.0,999.0",
			wantOK: false,
		},
		{
			name:   "plain text",
			text:   "hello, where are you today?",
			wantOK: false,
		},
		{
			name:   "empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := FromMapsURL(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLat, loc.Lat)
				assert.Equal(t, tt.wantLng, loc.Lng)
			}
		})
	}
}

// When a link carries both an "@lat,lng" fragment and a "?q=lat,lng" query
// with different values, the fragment's coordinates win.
func TestFromMapsURLPrecedence(t *testing.T) {
	text := "https://maps.google.com/?q=11.0,22.0&z=15 and https://maps.google.com/@23.0225,72.5714,15z"

	loc, ok := FromMapsURL(text)
	require.True(t, ok)
	assert.Equal(t, 23.0225, loc.Lat)
	assert.Equal(t, 72.5714, loc.Lng)
}

// An out-of-range "@" match must not mask a valid "?q=" pair elsewhere in the text.
func TestFromMapsURLFallsThroughOutOfRange(t *testing.T) {
	text := "https://maps.google.com/@999.0,999.0 https://maps.google.com/?q=23.0225,72.5714"

	loc, ok := FromMapsURL(text)
	require.True(t, ok)
	assert.Equal(t, 23.0225, loc.Lat)
	assert.Equal(t, 72.5714, loc.Lng)
}
