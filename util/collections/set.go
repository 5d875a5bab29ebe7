package collections

type Set[V comparable] map[V]struct{}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Slice returns the elements of the set, in no particular order
func (set Set[V]) Slice() []V {
	out := make([]V, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	return out
}
