package collections

type Collection[V any] interface {
	Size() int
	Entries() []V
}

type ReadOnlySet[V any] interface {
	Collection[V]
	Contains(v V) bool
	IsEmpty() bool
	Range(f func(V) bool)
	Iterator() Iterator[V]
	Equals(other ReadOnlySet[V]) bool
	String() string
}

type Set[V any] interface {
	ReadOnlySet[V]
	Add(v V) error
	AddAll(vs ...V) error
	Remove(v V) error
	RemoveAll(vs ...V) error
	RemoveIf(f func(V) bool) error
	RetainAll(vs ...V) error
	Clear() error
}

// SizedSet is a mutable set that tracks the bucket capacity of its backing table.
// Capacity only changes when the size grows past Capacity() * LoadFactor().
type SizedSet[V any] interface {
	Set[V]
	Capacity() int
	LoadFactor() float64
}

type Iterator[V any] interface {
	HasNext() bool
	Next() V
	Remove() error
}

func setEquals[V any](s ReadOnlySet[V], other ReadOnlySet[V]) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	for _, v := range other.Entries() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}
