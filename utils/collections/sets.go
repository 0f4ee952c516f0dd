package collections

import (
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/microsets/utils/math"
)

func identity[V comparable](v V) V {
	return v
}

// sizedCapacity returns floor(expectedSize / DefaultLoadFactor) + 1, capped at MaximumCapacity,
// before power-of-two rounding.
func sizedCapacity(expectedSize int) int {
	if expectedSize < 0 {
		getLogger().WithFields(log.Fields{"expected_size": expectedSize}).Warn("negative expected size, using 0")
		expectedSize = 0
	}
	if expectedSize >= MaximumCapacity {
		return MaximumCapacity
	}
	return math.Min(expectedSize+math.DivFloor(expectedSize, 3)+1, MaximumCapacity)
}

// NewSizedHashSet returns an empty set that holds up to expectedSize elements without resizing.
// A negative expectedSize is treated as 0.
func NewSizedHashSet[R comparable, V any](f HashSetHashFunc[R, V], expectedSize int) SizedSet[V] {
	return newHashSet(f, sizedCapacity(expectedSize))
}

func NewSizedHashSetOf[R comparable, V any](f HashSetHashFunc[R, V], elements ...V) SizedSet[V] {
	s := newHashSet(f, sizedCapacity(len(elements)))
	_ = s.AddAll(elements...)
	return s
}

func NewSizedSet[V comparable](expectedSize int) SizedSet[V] {
	return NewSizedHashSet(identity[V], expectedSize)
}

// NewSizedSetOf sizes the set by len(elements), duplicates included.
func NewSizedSetOf[V comparable](elements ...V) SizedSet[V] {
	return NewSizedHashSetOf(identity[V], elements...)
}

// NewImmutableHashSet returns a read-only copy of original. Later changes to original are not
// visible through the result. The concrete value also implements Set, and every mutating method
// on it returns ErrUnsupportedOperation.
func NewImmutableHashSet[R comparable, V any](original Collection[V], f HashSetHashFunc[R, V]) ReadOnlySet[V] {
	if original == nil || original.Size() == 0 {
		return emptySet[V]{}
	}
	entries := original.Entries()
	if original.Size() == 1 {
		return newSingletonSet(entries[0], f)
	}
	backing := newHashSet(f, sizedCapacity(len(entries)))
	_ = backing.AddAll(entries...)
	return &unmodifiableSet[V]{backing: backing}
}

// NewImmutableSet copies a set built by this package together with its hash func, so the result
// keeps the equality semantics of original.
func NewImmutableSet[V comparable](original Collection[V]) ReadOnlySet[V] {
	if original == nil || original.Size() == 0 {
		return emptySet[V]{}
	}
	if hs, ok := original.(*hashSet[V, V]); ok && hs.Size() > 1 {
		return &unmodifiableSet[V]{backing: hs.clone()}
	}
	return NewImmutableHashSet(original, identity[V])
}

func NewImmutableSetOf[V comparable](elements ...V) ReadOnlySet[V] {
	return NewImmutableSet[V](sliceCollection[V](lo.Uniq(elements)))
}

type sliceCollection[V any] []V

func (c sliceCollection[V]) Size() int {
	return len(c)
}

func (c sliceCollection[V]) Entries() []V {
	return c
}
