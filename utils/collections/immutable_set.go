package collections

import (
	"fmt"
)

var (
	_ Set[int] = emptySet[int]{}
	_ Set[int] = (*singletonSet[int, int])(nil)
	_ Set[int] = (*unmodifiableSet[int])(nil)
)

func unsupported(op string) error {
	getLogger().WithField("op", op).Debug("mutation rejected by immutable set")
	return ErrUnsupportedOperation
}

// emptySet is zero-sized, so every empty set of one element type is the same value.
type emptySet[V any] struct{}

func (s emptySet[V]) Contains(V) bool { return false }
func (s emptySet[V]) Size() int { return 0 }
func (s emptySet[V]) IsEmpty() bool { return true }
func (s emptySet[V]) Entries() []V { return []V{} }
func (s emptySet[V]) Range(func(V) bool) {}
func (s emptySet[V]) Iterator() Iterator[V] { return newReadOnlyIterator[V](nil) }
func (s emptySet[V]) String() string { return "[]" }
func (s emptySet[V]) Add(V) error { return unsupported("add") }
func (s emptySet[V]) AddAll(...V) error { return unsupported("add_all") }
func (s emptySet[V]) Remove(V) error { return unsupported("remove") }
func (s emptySet[V]) RemoveAll(...V) error { return unsupported("remove_all") }
func (s emptySet[V]) RemoveIf(func(V) bool) error { return unsupported("remove_if") }
func (s emptySet[V]) RetainAll(...V) error { return unsupported("retain_all") }
func (s emptySet[V]) Clear() error { return unsupported("clear") }

func (s emptySet[V]) Equals(other ReadOnlySet[V]) bool {
	return other != nil && other.Size() == 0
}

type singletonSet[R comparable, V any] struct {
	element  V
	hash     R
	hashFunc HashSetHashFunc[R, V]
}

func newSingletonSet[R comparable, V any](v V, f HashSetHashFunc[R, V]) *singletonSet[R, V] {
	return &singletonSet[R, V]{
		element:  v,
		hash:     f(v),
		hashFunc: f,
	}
}

func (s *singletonSet[R, V]) Contains(v V) bool {
	return s.hashFunc(v) == s.hash
}

func (s *singletonSet[R, V]) Size() int {
	return 1
}

func (s *singletonSet[R, V]) IsEmpty() bool {
	return false
}

func (s *singletonSet[R, V]) Entries() []V {
	return []V{s.element}
}

func (s *singletonSet[R, V]) Range(f func(V) bool) {
	f(s.element)
}

func (s *singletonSet[R, V]) Iterator() Iterator[V] {
	return newReadOnlyIterator(s.Entries())
}

func (s *singletonSet[R, V]) Equals(other ReadOnlySet[V]) bool {
	return setEquals[V](s, other)
}

func (s *singletonSet[R, V]) String() string {
	return fmt.Sprint(s.Entries())
}

func (s *singletonSet[R, V]) Add(V) error { return unsupported("add") }
func (s *singletonSet[R, V]) AddAll(...V) error { return unsupported("add_all") }
func (s *singletonSet[R, V]) Remove(V) error { return unsupported("remove") }
func (s *singletonSet[R, V]) RemoveAll(...V) error { return unsupported("remove_all") }
func (s *singletonSet[R, V]) RemoveIf(func(V) bool) error { return unsupported("remove_if") }
func (s *singletonSet[R, V]) RetainAll(...V) error { return unsupported("retain_all") }
func (s *singletonSet[R, V]) Clear() error { return unsupported("clear") }

// unmodifiableSet owns its backing set; nothing else holds a reference to it.
type unmodifiableSet[V any] struct {
	backing ReadOnlySet[V]
}

func (s *unmodifiableSet[V]) Contains(v V) bool {
	return s.backing.Contains(v)
}

func (s *unmodifiableSet[V]) Size() int {
	return s.backing.Size()
}

func (s *unmodifiableSet[V]) IsEmpty() bool {
	return s.backing.IsEmpty()
}

func (s *unmodifiableSet[V]) Entries() []V {
	return s.backing.Entries()
}

func (s *unmodifiableSet[V]) Range(f func(V) bool) {
	s.backing.Range(f)
}

// Iterator does not forward to the backing set, whose iterator supports Remove.
func (s *unmodifiableSet[V]) Iterator() Iterator[V] {
	return newReadOnlyIterator(s.backing.Entries())
}

func (s *unmodifiableSet[V]) Equals(other ReadOnlySet[V]) bool {
	return s.backing.Equals(other)
}

func (s *unmodifiableSet[V]) String() string {
	return s.backing.String()
}

func (s *unmodifiableSet[V]) Add(V) error { return unsupported("add") }
func (s *unmodifiableSet[V]) AddAll(...V) error { return unsupported("add_all") }
func (s *unmodifiableSet[V]) Remove(V) error { return unsupported("remove") }
func (s *unmodifiableSet[V]) RemoveAll(...V) error { return unsupported("remove_all") }
func (s *unmodifiableSet[V]) RemoveIf(func(V) bool) error { return unsupported("remove_if") }
func (s *unmodifiableSet[V]) RetainAll(...V) error { return unsupported("retain_all") }
func (s *unmodifiableSet[V]) Clear() error { return unsupported("clear") }
