package checks

import (
	"golang.org/x/text/cases"
)

// Fold applies Unicode case folding so comparisons ignore case.
// A new Caser is built per call since Casers keep state.
func Fold(s string) string {
	return cases.Fold().String(s)
}
