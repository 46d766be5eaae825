package core

// EntityID is a stable handle to an item in an Arena.
// The zero value never refers to an item.
type EntityID uint32

// Arena stores values densely while handing out IDs that survive removal of
// other items. Pointers returned by Get are only valid until the next Insert
// or Remove; hold the ID instead.
type Arena[T any] struct {
	items []T
	ids   []EntityID
	index map[EntityID]int
	next  EntityID
}

// NewArena creates an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{index: make(map[EntityID]int)}
}

// Insert adds v and returns its ID.
func (a *Arena[T]) Insert(v T) EntityID {
	if a.index == nil {
		a.index = make(map[EntityID]int)
	}
	a.next++
	id := a.next
	a.index[id] = len(a.items)
	a.items = append(a.items, v)
	a.ids = append(a.ids, id)
	return id
}

// Get returns a pointer to the item with the given ID.
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return &a.items[i], true
}

// Remove deletes the item with the given ID, preserving insertion order of the rest.
func (a *Arena[T]) Remove(id EntityID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	a.items = append(a.items[:i], a.items[i+1:]...)
	a.ids = append(a.ids[:i], a.ids[i+1:]...)
	delete(a.index, id)
	for j := i; j < len(a.ids); j++ {
		a.index[a.ids[j]] = j
	}
	return true
}

// RemoveLast deletes the most recently inserted surviving item.
func (a *Arena[T]) RemoveLast() bool {
	if len(a.ids) == 0 {
		return false
	}
	return a.Remove(a.ids[len(a.ids)-1])
}

// RemoveFunc deletes every item for which drop returns true.
func (a *Arena[T]) RemoveFunc(drop func(id EntityID, v *T) bool) int {
	kept := 0
	removed := 0
	for i := range a.items {
		id := a.ids[i]
		if drop(id, &a.items[i]) {
			delete(a.index, id)
			removed++
			continue
		}
		a.items[kept] = a.items[i]
		a.ids[kept] = id
		a.index[id] = kept
		kept++
	}
	clear(a.items[kept:])
	a.items = a.items[:kept]
	a.ids = a.ids[:kept]
	return removed
}

// Each calls fn for every item in insertion order.
func (a *Arena[T]) Each(fn func(id EntityID, v *T)) {
	for i := range a.items {
		fn(a.ids[i], &a.items[i])
	}
}

// Len returns the number of items.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
