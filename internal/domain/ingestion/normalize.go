package ingestion

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decompõe (NFD) e remove as marcas combinantes, de modo que
// "maçã" e "maca" casem com a mesma palavra-chave.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeForMatching produz a forma minúscula e sem acentos usada apenas na
// classificação, nunca na exibição.
func NormalizeForMatching(s string) string {
	lower := strings.ToLower(s)
	out, _, err := transform.String(stripAccents, lower)
	if err != nil {
		return lower
	}
	return out
}
