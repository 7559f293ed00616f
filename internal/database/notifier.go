package database

import "sync"

// changeNotifier fans out table-change signals to watchers. Each subscriber
// gets a buffered channel of size one: a notification that arrives while a
// previous one is still pending is dropped, coalescing bursts of writes into
// a single wakeup. Watchers re-query on wakeup, so a coalesced signal still
// yields the current state.
type changeNotifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{
		subs: make(map[string]map[int]chan struct{}),
	}
}

func (n *changeNotifier) Subscribe(table string) (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan struct{}, 1)
	if n.subs[table] == nil {
		n.subs[table] = make(map[int]chan struct{})
	}
	n.subs[table][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if subs, ok := n.subs[table]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(n.subs, table)
			}
		}
	}

	return ch, cancel
}

func (n *changeNotifier) Notify(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
			// A wakeup is already pending for this subscriber.
		}
	}
}
