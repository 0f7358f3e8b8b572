package ingestion

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Candidate é um nome de item extraído de uma entrada com vários itens.
// Display preserva o texto digitado (menos marcadores iniciais); Matching é a
// variante sem prefixo de quantidade, usada somente na classificação.
type Candidate struct {
	Display  string
	Matching string
}

var (
	// Separadores: vírgula, quebra de linha ou o conectivo "e" isolado.
	splitPattern = regexp.MustCompile(`,|\n|\s+e\s+`)

	// Marcadores de lista e pontuação no começo do fragmento ("- arroz", "• pão").
	leadingJunk = regexp.MustCompile(`^[^\p{L}\p{N}]+`)

	// Prefixo de quantidade: numeral decimal ou fração, seguido opcionalmente
	// de uma unidade curta ("2kg arroz") ou de uma unidade com "de"
	// ("1/2 duzia de ovos").
	quantityPrefix = regexp.MustCompile(`(?i)^[\d.,/]+\s*(?:\p{L}+\s+de\s+|\p{L}{1,3}\s+(?:de\s+)?)?`)
)

// Tokenize divide uma entrada livre em candidatos a item, na ordem digitada.
// Fragmentos vazios, de um único caractere ou iguais ao conectivo são
// descartados. Entrada vazia produz zero candidatos; quem chama trata isso
// como "nada a adicionar".
func Tokenize(raw string) []Candidate {
	fragments := splitPattern.Split(raw, -1)
	candidates := make([]Candidate, 0, len(fragments))

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) <= 1 || strings.EqualFold(fragment, "e") {
			continue
		}

		display := leadingJunk.ReplaceAllString(fragment, "")
		if display == "" {
			continue
		}

		matching := strings.TrimSpace(quantityPrefix.ReplaceAllString(fragment, ""))
		if matching == "" {
			// Só restou a quantidade: classifica pelo fragmento inteiro.
			matching = fragment
		}

		candidates = append(candidates, Candidate{Display: display, Matching: matching})
	}

	return candidates
}
