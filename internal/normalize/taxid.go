package normalize

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

var (
	reLabeledTaxID = regexp.MustCompile(constants.PatternLabeledTaxID)
	reStandaloneID = regexp.MustCompile(constants.PatternStandaloneID)
	rePhone        = regexp.MustCompile(constants.PatternPhone)
	reNonDigit     = regexp.MustCompile(`\D`)
)

// DigitsOnly strips everything but digits.
func DigitsOnly(s string) string {
	return reNonDigit.ReplaceAllString(s, "")
}

// IsPhoneNumber reports whether s looks like a Turkish phone number rather
// than an identifier. Mobile numbers are 10/11 digits and collide with
// VKN/TCKN lengths, so the leading 0 5xx / +90 shapes are checked.
func IsPhoneNumber(s string) bool {
	if rePhone.MatchString(s) {
		return true
	}
	d := DigitsOnly(s)
	switch {
	case len(d) == 11 && strings.HasPrefix(d, "05"):
		return true
	case len(d) == 12 && strings.HasPrefix(d, "905"):
		return true
	}
	return false
}

// LabeledTaxID returns the 10-digit VKN following an explicit tax-id label
// in lowered text, or "".
func LabeledTaxID(lowered string) string {
	if m := reLabeledTaxID.FindStringSubmatch(lowered); m != nil {
		return m[1]
	}
	return ""
}

// StandaloneID returns the first bare 10- or 11-digit sequence in s that is
// not a phone number, or "".
func StandaloneID(s string) string {
	for _, m := range reStandaloneID.FindAllString(s, -1) {
		if !IsPhoneNumber(m) {
			return m
		}
	}
	return ""
}
