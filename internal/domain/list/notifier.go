package list

import (
	"sync"

	"github.com/oklog/ulid/v2"
)

// Notifier distribui o snapshot completo de itens de uma lista para os
// assinantes após cada escrita bem-sucedida.
type Notifier struct {
	mu   sync.Mutex
	subs map[string]map[chan []Item]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string]map[chan []Item]struct{})}
}

// Subscribe registra um assinante para a lista e devolve o canal de
// snapshots e a função de cancelamento. Cancelar fecha o canal.
func (n *Notifier) Subscribe(listID ulid.ULID) (<-chan []Item, func()) {
	key := listID.String()
	ch := make(chan []Item, 8)

	n.mu.Lock()
	set, ok := n.subs[key]
	if !ok {
		set = make(map[chan []Item]struct{})
		n.subs[key] = set
	}
	set[ch] = struct{}{}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		set, ok := n.subs[key]
		if !ok {
			return
		}
		if _, ok := set[ch]; !ok {
			return
		}
		delete(set, ch)
		close(ch)
		if len(set) == 0 {
			delete(n.subs, key)
		}
	}
	return ch, cancel
}

// Publish entrega o snapshot a todos os assinantes da lista. Assinante com
// buffer cheio perde este snapshot e recebe o próximo.
func (n *Notifier) Publish(listID ulid.ULID, items []Item) {
	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs[listID.String()] {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
