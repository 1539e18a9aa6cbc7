package tiercache

import "container/list"

// lruStore keeps entries in a recency list, most recently touched at the
// front. The eviction victim is the list back.
type lruStore[K comparable, V any] struct {
	items   map[K]*list.Element
	recency *list.List
}

func newLRUStore[K comparable, V any]() *lruStore[K, V] {
	return &lruStore[K, V]{
		items:   make(map[K]*list.Element),
		recency: list.New(),
	}
}

func (s *lruStore[K, V]) get(key K) (V, bool) {
	if elem, ok := s.items[key]; ok {
		s.recency.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (s *lruStore[K, V]) update(key K, value V) bool {
	elem, ok := s.items[key]
	if !ok {
		return false
	}
	s.recency.MoveToFront(elem)
	elem.Value.(*entry[K, V]).value = value
	return true
}

func (s *lruStore[K, V]) insert(key K, value V) {
	s.items[key] = s.recency.PushFront(&entry[K, V]{key: key, value: value})
}

func (s *lruStore[K, V]) evict() (entry[K, V], bool) {
	elem := s.recency.Back()
	if elem == nil {
		return entry[K, V]{}, false
	}
	ent := elem.Value.(*entry[K, V])
	s.recency.Remove(elem)
	delete(s.items, ent.key)
	return *ent, true
}

func (s *lruStore[K, V]) len() int {
	return len(s.items)
}

// entries lists the contents most recently touched first.
func (s *lruStore[K, V]) entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, s.recency.Len())
	for elem := s.recency.Front(); elem != nil; elem = elem.Next() {
		ent := elem.Value.(*entry[K, V])
		out = append(out, Entry[K, V]{Key: ent.key, Value: ent.value})
	}
	return out
}

func (s *lruStore[K, V]) clear() {
	s.items = make(map[K]*list.Element)
	s.recency.Init()
}
