package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Name canonicalizes a player name for lookups: unicode-normalized,
// case-folded, inner whitespace collapsed.
func Name(name string) string {
	name = norm.NFC.String(name)
	name = folder.String(name)
	return strings.Join(strings.Fields(name), " ")
}
