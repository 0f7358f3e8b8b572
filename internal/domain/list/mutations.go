package list

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// Transformações puras sobre a coleção de itens. Cada função recebe o
// snapshot atual e devolve a próxima coleção completa; quem chama decide
// persistir o resultado por substituição integral.

// Prepend insere os itens novos no topo, preservando a ordem de entrada.
func Prepend(items []Item, newItems []Item) []Item {
	next := make([]Item, 0, len(items)+len(newItems))
	next = append(next, newItems...)
	next = append(next, items...)
	return next
}

// Toggle inverte o marcado do item com o id dado. Id ausente não altera nada.
func Toggle(items []Item, id ulid.ULID) ([]Item, bool) {
	for i := range items {
		if items[i].Id == id {
			next := make([]Item, len(items))
			copy(next, items)
			next[i].Checked = !next[i].Checked
			return next, true
		}
	}
	return items, false
}

// Remove descarta o item com o id dado. Id ausente não altera nada.
func Remove(items []Item, id ulid.ULID) ([]Item, bool) {
	for i := range items {
		if items[i].Id == id {
			next := make([]Item, 0, len(items)-1)
			next = append(next, items[:i]...)
			next = append(next, items[i+1:]...)
			return next, true
		}
	}
	return items, false
}

// Rename troca o nome do item. Nome vazio após trim, igual ao atual ou id
// ausente mantém a coleção original.
func Rename(items []Item, id ulid.ULID, newName string) ([]Item, bool) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return items, false
	}
	for i := range items {
		if items[i].Id == id {
			if items[i].Name == trimmed {
				return items, false
			}
			next := make([]Item, len(items))
			copy(next, items)
			next[i].Name = trimmed
			return next, true
		}
	}
	return items, false
}

// SetPrice define ou limpa (nil) o preço do item. Nunca reclassifica a
// categoria.
func SetPrice(items []Item, id ulid.ULID, price *float64) ([]Item, bool) {
	for i := range items {
		if items[i].Id == id {
			next := make([]Item, len(items))
			copy(next, items)
			if price == nil {
				next[i].Price = nil
			} else {
				value := *price
				next[i].Price = &value
			}
			return next, true
		}
	}
	return items, false
}

// RemoveChecked descarta todos os itens marcados e informa quantos saíram.
func RemoveChecked(items []Item) ([]Item, int) {
	next := make([]Item, 0, len(items))
	for _, item := range items {
		if !item.Checked {
			next = append(next, item)
		}
	}
	return next, len(items) - len(next)
}
