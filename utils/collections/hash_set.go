package collections

import (
	"fmt"
	stdmath "math"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/microsets/utils/math"
	"golang.org/x/exp/maps"
)

const (
	DefaultLoadFactor      = 0.75
	MinInitialCapacity     = 4
	DefaultInitialCapacity = 16
	MaximumCapacity        = 1 << 30

	// maxPreallocated bounds the map size hint; larger sets let the runtime map grow on demand.
	maxPreallocated = 1 << 16
)

type hashSet[R comparable, V any] struct {
	entries   map[R]V
	hashFunc  HashSetHashFunc[R, V]
	capacity  int
	threshold int
}

type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return newHashSet(f, DefaultInitialCapacity)
}

// newHashSet rounds initialCapacity up to a power of two in [MinInitialCapacity, MaximumCapacity].
func newHashSet[R comparable, V any](f HashSetHashFunc[R, V], initialCapacity int) *hashSet[R, V] {
	capacity := math.Max(initialCapacity, MinInitialCapacity)
	if capacity >= MaximumCapacity {
		capacity = MaximumCapacity
	} else {
		capacity = math.NextPowerOfTwo(capacity)
	}
	return &hashSet[R, V]{
		entries:   make(map[R]V, math.Min(loadLimit(capacity), maxPreallocated)),
		hashFunc:  f,
		capacity:  capacity,
		threshold: thresholdFor(capacity),
	}
}

func loadLimit(capacity int) int {
	return int(float64(capacity) * DefaultLoadFactor)
}

func thresholdFor(capacity int) int {
	if capacity >= MaximumCapacity {
		return stdmath.MaxInt
	}
	return loadLimit(capacity)
}

func (s *hashSet[R, V]) resize() {
	oldCapacity := s.capacity
	s.capacity = oldCapacity * 2
	s.threshold = thresholdFor(s.capacity)
	getLogger().WithFields(log.Fields{
		"size":         len(s.entries),
		"old_capacity": oldCapacity,
		"capacity":     s.capacity,
	}).Debug("hash set resized")
}

// clone keeps the hash func and capacity of s.
func (s *hashSet[R, V]) clone() *hashSet[R, V] {
	c := *s
	c.entries = maps.Clone(s.entries)
	return &c
}

func (s *hashSet[R, V]) Contains(v V) bool {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return true
	}
	return false
}

func (s *hashSet[R, V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries[s.hashFunc(v)] = v
	if len(s.entries) > s.threshold {
		s.resize()
	}
	return nil
}

func (s *hashSet[R, V]) AddAll(vs ...V) error {
	for _, v := range vs {
		if err := s.Add(v); err != nil && err != ErrValueExisted {
			return err
		}
	}
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	if !s.Contains(v) {
		return ErrValueNotExisted
	}
	delete(s.entries, s.hashFunc(v))
	return nil
}

func (s *hashSet[R, V]) RemoveAll(vs ...V) error {
	for _, v := range vs {
		delete(s.entries, s.hashFunc(v))
	}
	return nil
}

func (s *hashSet[R, V]) RemoveIf(f func(V) bool) error {
	maps.DeleteFunc(s.entries, func(_ R, v V) bool {
		return f(v)
	})
	return nil
}

func (s *hashSet[R, V]) RetainAll(vs ...V) error {
	keep := lo.KeyBy(vs, func(v V) R {
		return s.hashFunc(v)
	})
	maps.DeleteFunc(s.entries, func(hash R, _ V) bool {
		_, ok := keep[hash]
		return !ok
	})
	return nil
}

// Clear keeps the current capacity.
func (s *hashSet[R, V]) Clear() error {
	maps.Clear(s.entries)
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *hashSet[R, V]) Capacity() int {
	return s.capacity
}

func (s *hashSet[R, V]) LoadFactor() float64 {
	return DefaultLoadFactor
}

func (s *hashSet[R, V]) Entries() []V {
	return lo.Values(s.entries)
}

func (s *hashSet[R, V]) Range(f func(V) bool) {
	for _, v := range s.entries {
		if !f(v) {
			return
		}
	}
}

func (s *hashSet[R, V]) Iterator() Iterator[V] {
	return &hashSetIterator[R, V]{
		set:     s,
		entries: s.Entries(),
	}
}

func (s *hashSet[R, V]) Equals(other ReadOnlySet[V]) bool {
	return setEquals[V](s, other)
}

func (s *hashSet[R, V]) String() string {
	return fmt.Sprint(s.Entries())
}
