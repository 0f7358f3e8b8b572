package list

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Item é um registro plano da lista. O preço é opcional e ausência
// significa contribuição zero no total estimado.
type Item struct {
	Id       ulid.ULID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    *float64  `json:"price,omitempty"`
	Checked  bool      `json:"checked"`
}

type List struct {
	Id        ulid.ULID `json:"id"`
	UserId    ulid.ULID `json:"userId"`
	Name      string    `json:"name"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Progress resume o andamento de uma lista (itens comprados / total).
type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

func (l *List) Progress() Progress {
	p := Progress{Total: len(l.Items)}
	for _, item := range l.Items {
		if item.Checked {
			p.Done++
		}
	}
	return p
}
