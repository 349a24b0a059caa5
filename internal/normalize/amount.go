package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

var (
	reAmount         = regexp.MustCompile(constants.PatternAmount)
	reThousandGroups = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	reCurrencyNoise  = regexp.MustCompile(`(?i)(?:₺|\btl\b|\btry\b)`)
)

// ParseAmount converts a Turkish-notation amount token to a float:
// "1.234,56" → 1234.56, "809,96" → 809.96. Currency markers are stripped.
// A 4-digit integer in the current-era year range is never an amount.
func ParseAmount(tok string) (float64, bool) {
	s := strings.TrimSpace(reCurrencyNoise.ReplaceAllString(tok, ""))
	s = reAmount.FindString(s)
	if s == "" {
		return 0, false
	}

	switch {
	case strings.Contains(s, ","):
		// decimal comma; any dots are thousand separators
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case reThousandGroups.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	case isYearToken(s):
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// FindAmounts scans free text for amount tokens. Only tokens carrying a
// separator qualify: a bare integer in running text is far more often an
// identifier, quantity, or year than a price.
func FindAmounts(s string) []float64 {
	var out []float64
	for _, tok := range reAmount.FindAllString(s, -1) {
		if !strings.ContainsAny(tok, ",.") {
			continue
		}
		if v, ok := ParseAmount(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// MaxAmount returns the largest amount found in s, if any.
func MaxAmount(s string) (float64, bool) {
	amounts := FindAmounts(s)
	if len(amounts) == 0 {
		return 0, false
	}
	best := amounts[0]
	for _, v := range amounts[1:] {
		if v > best {
			best = v
		}
	}
	return best, true
}

// RightmostAmount returns the last amount token on a text line, the usual
// position of the value next to its label.
func RightmostAmount(s string) (float64, bool) {
	amounts := FindAmounts(s)
	if len(amounts) == 0 {
		return 0, false
	}
	return amounts[len(amounts)-1], true
}

func isYearToken(s string) bool {
	if len(s) != 4 {
		return false
	}
	y, err := strconv.Atoi(s)
	return err == nil && y >= 1900 && y <= 2099
}
