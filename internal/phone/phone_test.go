package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already digits", "919876543210", "919876543210"},
		{"plus prefix", "+919876543210", "919876543210"},
		{"spaces and dashes", "+91 98765-43210", "919876543210"},
		{"empty", "", ""},
		{"no digits at all", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DigitsOnly(tt.input))
		})
	}
}

func TestWithCountryCode(t *testing.T) {
	assert.Equal(t, "919876543210", WithCountryCode("9876543210"))
	assert.Equal(t, "919876543210", WithCountryCode("919876543210"))
	assert.Equal(t, "12025550123", WithCountryCode("12025550123"))
	assert.Equal(t, "", WithCountryCode(""))
}

func TestCandidateVariants(t *testing.T) {
	variants := CandidateVariants("+91 9876543210")
	assert.Equal(t, []string{"+91 9876543210", "919876543210", "+919876543210"}, variants)

	// Bare 10-digit input picks up the country-code variants.
	variants = CandidateVariants("9876543210")
	assert.Equal(t, []string{"9876543210", "919876543210", "+919876543210"}, variants)

	// Never empty, even for garbage input.
	assert.NotEmpty(t, CandidateVariants(""))
}

// The canonical stored phone (digits with country code) and any of the formats
// a vendor profile may carry must always share at least one variant.
func TestCandidateVariantsIntersect(t *testing.T) {
	canonical := "919876543210"
	storedFormats := []string{"9876543210", "+919876543210", "919876543210", "+91 98765 43210"}

	canonicalVariants := CandidateVariants(canonical)
	for _, stored := range storedFormats {
		storedVariants := CandidateVariants(stored)

		intersects := false
		for _, a := range canonicalVariants {
			for _, b := range storedVariants {
				if a == b {
					intersects = true
				}
			}
		}
		assert.True(t, intersects, "no common variant for stored format %q", stored)
	}
}

func TestInternational(t *testing.T) {
	assert.Equal(t, "+919876543210", International("9876543210"))
	assert.Equal(t, "+919876543210", International("+91 98765 43210"))
	assert.Equal(t, "+919876543210", International("919876543210"))
	assert.Equal(t, "", International("12345"))
	assert.Equal(t, "", International(""))
}
