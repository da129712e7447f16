// Package recency maintains a total order over cache keys by last access and
// selects least-recently-used eviction victims.
package recency

import "container/list"

// Index tracks access order for a set of keys. The front of the list is the
// most recently used key, the back is the eviction candidate. Keys registered
// earlier sort older among never-touched keys, so eviction order is
// deterministic.
//
// Index is not safe for concurrent use; the engine serializes access.
type Index struct {
	order *list.List
	elems map[string]*list.Element
}

// New returns an empty index.
func New() *Index {
	return &Index{
		order: list.New(),
		elems: make(map[string]*list.Element),
	}
}

// Register adds a brand-new key at the most-recently-used end. Registering a
// key that is already tracked just refreshes its position.
func (i *Index) Register(key string) {
	if elem, ok := i.elems[key]; ok {
		i.order.MoveToFront(elem)
		return
	}
	i.elems[key] = i.order.PushFront(key)
}

// Touch moves key to the most-recently-used end. It reports whether the key
// was tracked; untracked keys must be Registered first.
func (i *Index) Touch(key string) bool {
	elem, ok := i.elems[key]
	if !ok {
		return false
	}
	i.order.MoveToFront(elem)
	return true
}

// Victim returns the least-recently-used tracked key.
func (i *Index) Victim() (string, bool) {
	back := i.order.Back()
	if back == nil {
		return "", false
	}
	return back.Value.(string), true
}

// Forget removes key from tracking. It reports whether the key was tracked.
func (i *Index) Forget(key string) bool {
	elem, ok := i.elems[key]
	if !ok {
		return false
	}
	i.order.Remove(elem)
	delete(i.elems, key)
	return true
}

// Len returns the number of tracked keys.
func (i *Index) Len() int {
	return len(i.elems)
}

// Clear drops all tracked keys.
func (i *Index) Clear() {
	i.order.Init()
	clear(i.elems)
}
