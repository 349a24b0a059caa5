// Package normalize holds the numeric/text repair utilities shared by every
// extraction strategy: Turkish amount and date parsing, identifier cleanup,
// ETTN canonicalization, and tax-rate detection. All patterns compile at
// package init; a malformed pattern is a programming defect and fails fast,
// never per parse.
package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases with the Turkish case mapping (İ→i, I→ı), so keyword
// matching behaves on dotted/dotless i the way the documents are written.
// A fresh Caser per call: cases.Caser carries state and must not be shared
// across goroutines.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}
