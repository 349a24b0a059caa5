package normalize

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

var (
	reETTN   = regexp.MustCompile(constants.PatternETTN)
	reHex32  = regexp.MustCompile(`^[0-9a-f]{32}$`)
	reSepRun = regexp.MustCompile(`[\s:._-]+`)

	// confusable glyphs the recognizer trades for hex digits
	ettnConfusables = strings.NewReplacer(
		"O", "0", "o", "0",
		"l", "1", "I", "1", "ı", "1",
		"S", "5", "s", "5",
	)
)

// NormalizeETTN repairs and canonicalizes a recognized transaction
// identifier: separators are stripped, commonly-confused glyphs are mapped
// back to digits, and the 32 hex characters are regrouped into the canonical
// lowercase 8-4-4-4-12 form. The result is validated as a UUID.
func NormalizeETTN(raw string) (string, bool) {
	s := reSepRun.ReplaceAllString(strings.TrimSpace(raw), "")
	s = strings.ToLower(ettnConfusables.Replace(s))
	if !reHex32.MatchString(s) {
		return "", false
	}
	formatted := strings.Join([]string{s[0:8], s[8:12], s[12:16], s[16:20], s[20:32]}, "-")
	if _, err := uuid.Parse(formatted); err != nil {
		return "", false
	}
	return formatted, true
}

// ReassembleETTN rebuilds an identifier the recognizer split into adjacent
// whitespace-delimited groups. It looks for a consecutive run of tokens
// matching the expected group lengths (8-4-4-4-12) and normalizes the join.
func ReassembleETTN(tokens []string) (string, bool) {
	want := constants.ETTNGroupLengths
	for start := 0; start+len(want) <= len(tokens); start++ {
		ok := true
		for i, n := range want {
			if len(tokens[start+i]) != n {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if ettn, valid := NormalizeETTN(strings.Join(tokens[start:start+len(want)], "")); valid {
			return ettn, true
		}
	}
	return "", false
}

// FindETTN scans free text for an already well-formed grouped identifier.
func FindETTN(text string) (string, bool) {
	if m := reETTN.FindString(text); m != "" {
		return NormalizeETTN(m)
	}
	return "", false
}
