package ingestion

// ParsedItem é a saída do pipeline de ingestão: um nome de exibição e a
// categoria inferida, prontos para virar um item de lista.
type ParsedItem struct {
	Name     string
	Category string
}

type Service struct {
	categorizer *Categorizer
}

func NewService(categorizer *Categorizer) *Service {
	return &Service{categorizer: categorizer}
}

// ParseItems liga o tokenizador ao classificador: a exibição mantém o texto
// digitado (inclusive quantidades), o casamento as ignora. Entrada vazia ou
// inaproveitável devolve zero itens, nunca erro.
func (s *Service) ParseItems(input string) []ParsedItem {
	candidates := Tokenize(input)
	parsed := make([]ParsedItem, 0, len(candidates))

	for _, candidate := range candidates {
		parsed = append(parsed, ParsedItem{
			Name:     candidate.Display,
			Category: s.categorizer.Categorize(candidate.Matching),
		})
	}

	return parsed
}
