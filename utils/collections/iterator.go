package collections

// hashSetIterator walks a snapshot of the set taken when the iterator was created.
type hashSetIterator[R comparable, V any] struct {
	set       *hashSet[R, V]
	entries   []V
	next      int
	removable bool
}

func (it *hashSetIterator[R, V]) HasNext() bool {
	return it.next < len(it.entries)
}

func (it *hashSetIterator[R, V]) Next() (v V) {
	if !it.HasNext() {
		return v
	}
	v = it.entries[it.next]
	it.next++
	it.removable = true
	return v
}

func (it *hashSetIterator[R, V]) Remove() error {
	if !it.removable {
		return ErrIllegalIteratorState
	}
	it.removable = false
	delete(it.set.entries, it.set.hashFunc(it.entries[it.next-1]))
	return nil
}

type readOnlyIterator[V any] struct {
	entries []V
	next    int
}

func newReadOnlyIterator[V any](entries []V) Iterator[V] {
	return &readOnlyIterator[V]{entries: entries}
}

func (it *readOnlyIterator[V]) HasNext() bool {
	return it.next < len(it.entries)
}

func (it *readOnlyIterator[V]) Next() (v V) {
	if !it.HasNext() {
		return v
	}
	v = it.entries[it.next]
	it.next++
	return v
}

func (it *readOnlyIterator[V]) Remove() error {
	return unsupported("iterator.remove")
}
