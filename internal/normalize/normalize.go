package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Name trims and collapses whitespace and brings the name to NFC form.
func Name(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// Key is Name with case folded, for comparing names.
func Key(name string) string {
	return cases.Fold().String(Name(name))
}
