// Package phone normalizes vendor phone numbers across the formats they are
// stored and delivered in. WhatsApp delivers digits-only MSISDNs with country
// code ("919876543210"), while vendor profiles carry whatever the vendor typed
// at registration ("+91 98765 43210", "9876543210", ...). Every lookup that
// matches the two goes through CandidateVariants.
package phone

import "strings"

const indiaCountryCode = "91"

// DigitsOnly strips every non-digit rune from raw.
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// WithCountryCode prepends "91" to a bare 10-digit Indian subscriber number.
// Anything else is returned unchanged.
func WithCountryCode(msisdn string) string {
	if len(msisdn) == 10 && msisdn == DigitsOnly(msisdn) {
		return indiaCountryCode + msisdn
	}

	return msisdn
}

// CandidateVariants returns every plausible stored representation of raw,
// de-duplicated and in lookup order: as given, digits only, with country code,
// and "+"-prefixed with country code. It never returns an empty slice; an
// empty input yields a single empty-string variant.
func CandidateVariants(raw string) []string {
	digits := DigitsOnly(raw)
	withCC := WithCountryCode(digits)

	candidates := []string{raw, digits, withCC, "+" + withCC}
	variants := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		variants = append(variants, candidate)
	}

	return variants
}

// International converts raw to a "+"-prefixed international form suitable for
// the messaging platform's send API. Numbers under 10 digits cannot be valid
// MSISDNs and return "".
func International(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) < 10 {
		return ""
	}

	return "+" + WithCountryCode(digits)
}
