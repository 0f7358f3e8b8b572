package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "violates unique constraint")
}

// NormalizeName coloca cada palavra com inicial maiúscula, usada para nomes
// de listas e de usuários.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	words := strings.Fields(name)
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		normalized = append(normalized, CapitalizeFirst(strings.ToLower(word)))
	}
	return strings.Join(normalized, " ")
}

// CapitalizeFirst coloca apenas a primeira runa em maiúscula, preservando o
// resto do texto como digitado ("2kg arroz" → "2kg arroz", "maçã" → "Maçã").
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
