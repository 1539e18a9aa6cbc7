package tiercache

import "container/list"

// lfuEntry carries the per-key access counter alongside the value. Keeping
// the counter on the node keeps the key set and the frequency set in 1:1
// correspondence by construction.
type lfuEntry[K comparable, V any] struct {
	key   K
	value V
	freq  int
}

// lfuStore keeps entries in insertion order and a frequency counter per
// key. A freshly inserted key starts at frequency 0: insertion is not
// itself an access. Overwriting an existing key preserves its counter.
//
// Eviction scans the insertion-order list and removes the first entry with
// the minimum frequency, so ties resolve to the oldest insertion. The scan
// is linear in the level size; capacities are item counts and small, and
// it keeps the tie-break deterministic where a map walk would not be.
type lfuStore[K comparable, V any] struct {
	items map[K]*list.Element
	order *list.List
}

func newLFUStore[K comparable, V any]() *lfuStore[K, V] {
	return &lfuStore[K, V]{
		items: make(map[K]*list.Element),
		order: list.New(),
	}
}

func (s *lfuStore[K, V]) get(key K) (V, bool) {
	if elem, ok := s.items[key]; ok {
		ent := elem.Value.(*lfuEntry[K, V])
		ent.freq++
		return ent.value, true
	}
	var zero V
	return zero, false
}

func (s *lfuStore[K, V]) update(key K, value V) bool {
	elem, ok := s.items[key]
	if !ok {
		return false
	}
	elem.Value.(*lfuEntry[K, V]).value = value
	return true
}

func (s *lfuStore[K, V]) insert(key K, value V) {
	s.items[key] = s.order.PushBack(&lfuEntry[K, V]{key: key, value: value})
}

func (s *lfuStore[K, V]) evict() (entry[K, V], bool) {
	var victim *list.Element
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		if victim == nil || elem.Value.(*lfuEntry[K, V]).freq < victim.Value.(*lfuEntry[K, V]).freq {
			victim = elem
		}
	}
	if victim == nil {
		return entry[K, V]{}, false
	}
	ent := victim.Value.(*lfuEntry[K, V])
	s.order.Remove(victim)
	delete(s.items, ent.key)
	return entry[K, V]{key: ent.key, value: ent.value}, true
}

func (s *lfuStore[K, V]) len() int {
	return len(s.items)
}

// entries lists the contents in insertion order.
func (s *lfuStore[K, V]) entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, s.order.Len())
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		ent := elem.Value.(*lfuEntry[K, V])
		out = append(out, Entry[K, V]{Key: ent.key, Value: ent.value})
	}
	return out
}

func (s *lfuStore[K, V]) clear() {
	s.items = make(map[K]*list.Element)
	s.order.Init()
}
