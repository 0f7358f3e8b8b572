package ingestion

import (
	"strings"
)

const (
	// CategoryOutros é a categoria de escape: sempre ordenada por último nas
	// projeções agrupadas.
	CategoryOutros = "Outros"

	// CategoryUtilidades recebe itens de casa que não pertencem a nenhuma
	// categoria de mercado (potes, pilhas, lâmpadas).
	CategoryUtilidades = "Utilidades"
)

// CategoryKeywords associa um rótulo de categoria ao seu conjunto de
// palavras-chave. A ordem de declaração na tabela é critério de desempate:
// quando um nome casa com palavras de duas categorias, vence a declarada
// primeiro.
type CategoryKeywords struct {
	Label    string
	Keywords []string
}

// Categorizer classifica nomes de item por substring sobre uma tabela
// ordenada e imutável de palavras-chave. A correspondência é proposital e
// deliberadamente por substring, não por palavra inteira: uma palavra-chave
// embutida em outra palavra classifica mesmo assim.
type Categorizer struct {
	table     []CategoryKeywords
	fallbacks []string
}

// NewCategorizer copia e normaliza a tabela recebida; o Categorizer nunca a
// altera depois disso. Testes podem injetar corpora alternativos.
func NewCategorizer(table []CategoryKeywords) *Categorizer {
	copied := make([]CategoryKeywords, len(table))
	for i, entry := range table {
		keywords := make([]string, len(entry.Keywords))
		for j, keyword := range entry.Keywords {
			keywords[j] = NormalizeForMatching(keyword)
		}
		copied[i] = CategoryKeywords{Label: entry.Label, Keywords: keywords}
	}

	return &Categorizer{
		table:     copied,
		fallbacks: []string{"pote", "plastico", "lampada", "pilha"},
	}
}

// NewDefaultCategorizer monta o classificador com o corpus embutido.
func NewDefaultCategorizer() *Categorizer {
	return NewCategorizer(DefaultCorpus())
}

// Categorize é uma função total: nunca falha, no pior caso devolve a
// categoria de escape.
func (c *Categorizer) Categorize(name string) string {
	normalized := NormalizeForMatching(name)

	for _, entry := range c.table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				return entry.Label
			}
		}
	}

	for _, keyword := range c.fallbacks {
		if strings.Contains(normalized, keyword) {
			return CategoryUtilidades
		}
	}

	return CategoryOutros
}
