package list

import (
	"sort"

	"Feira/internal/domain/ingestion"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type CategoryGroup struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Summary é a projeção derivada de uma lista: itens pendentes agrupados
// por categoria, itens comprados em separado e o total estimado. Sempre
// recalculada a partir do snapshot mais recente, nunca cacheada.
type Summary struct {
	Groups         []CategoryGroup `json:"groups"`
	Completed      []Item          `json:"completed"`
	EstimatedTotal float64         `json:"estimatedTotal"`
}

// BuildSummary agrupa os itens pendentes por categoria, ordena grupos e
// itens com colação pt-BR (a categoria residual sempre por último) e soma
// o preço de todo item que tiver um, marcado ou não.
func BuildSummary(items []Item) Summary {
	cl := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

	grouped := make(map[string][]Item)
	var completed []Item
	total := 0.0

	for _, item := range items {
		if item.Price != nil {
			total += *item.Price
		}
		if item.Checked {
			completed = append(completed, item)
			continue
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	labels := make([]string, 0, len(grouped))
	for label := range grouped {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i] == ingestion.CategoryOutros {
			return false
		}
		if labels[j] == ingestion.CategoryOutros {
			return true
		}
		return cl.CompareString(labels[i], labels[j]) < 0
	})

	byName := func(items []Item) {
		sort.SliceStable(items, func(i, j int) bool {
			return cl.CompareString(items[i].Name, items[j].Name) < 0
		})
	}

	groups := make([]CategoryGroup, 0, len(labels))
	for _, label := range labels {
		group := grouped[label]
		byName(group)
		groups = append(groups, CategoryGroup{Category: label, Items: group})
	}
	byName(completed)

	return Summary{
		Groups:         groups,
		Completed:      completed,
		EstimatedTotal: total,
	}
}
