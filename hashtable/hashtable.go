package hashtable

import (
	"fmt"
	"iter"

	"github.com/on-the-ground/chaintable/hashers"
	"github.com/on-the-ground/chaintable/shared/chain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// HashFunc maps a key to an unsigned integer. It must be deterministic for the
// lifetime of the key in the table.
type HashFunc[K any] func(K) uint64

// EqualFunc reports key equality. Equal keys must have equal hashes.
type EqualFunc[K any] func(a, b K) bool

// Strategy bundles a hash function with the equality it is consistent with.
type Strategy[K any] interface {
	Hash(K) uint64
	Equal(a, b K) bool
}

type entry[K, V any] struct {
	key   K
	value V
}

// HashTable is a separately chained hash table. A nil bucket is empty; a
// non-nil bucket always holds at least one entry.
//
// HashTable is not safe for concurrent use. Callers sharing a table between
// goroutines must guard every call, reads included, with their own lock.
type HashTable[K, V any] struct {
	buckets    []*chain.Chain[*entry[K, V]]
	hash       HashFunc[K]
	keyEqual   EqualFunc[K]
	loadFactor float64
	maxBuckets int
	numUsed    int
	size       int

	logger    *zap.Logger
	capWarned bool
	destroyed bool
}

// New returns an empty table. It panics if either function is nil or if the
// options do not pass Config.Validate.
func New[K, V any](hash HashFunc[K], keyEqual EqualFunc[K], options ...Option) *HashTable[K, V] {
	if hash == nil || keyEqual == nil {
		panic(fmt.Errorf("%w: hash and equality functions are required", ErrInvalidConfig))
	}
	cfg := NewConfig(options...)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &HashTable[K, V]{
		buckets:    make([]*chain.Chain[*entry[K, V]], cfg.InitialBuckets),
		hash:       hash,
		keyEqual:   keyEqual,
		loadFactor: cfg.LoadFactor,
		maxBuckets: cfg.MaxBuckets,
		logger:     cfg.Logger,
	}
}

func NewWithStrategy[K, V any](s Strategy[K], options ...Option) *HashTable[K, V] {
	return New[K, V](s.Hash, s.Equal, options...)
}

// NewComparable returns a table keyed by a comparable type, hashed with a
// per-table seed and compared with ==.
func NewComparable[K comparable, V any](options ...Option) *HashTable[K, V] {
	return New[K, V](hashers.Comparable[K](), hashers.Equal[K], options...)
}

// Put stores value under key. If key was present its value is replaced in
// place, the previous value is returned with replaced set, and the table does
// not grow.
func (t *HashTable[K, V]) Put(key K, value V) (previous V, replaced bool) {
	t.mustBeLive()
	if e := t.lookup(key); e != nil {
		previous, e.value = e.value, value
		return previous, true
	}
	if t.insert(&entry[K, V]{key: key, value: value}) {
		t.growIfNeeded()
	}
	return previous, false
}

// Get returns the value stored under key.
func (t *HashTable[K, V]) Get(key K) (V, bool) {
	t.mustBeLive()
	if e := t.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

func (t *HashTable[K, V]) Contains(key K) bool {
	t.mustBeLive()
	return t.lookup(key) != nil
}

// Remove deletes key and hands its value back to the caller. keyCleanup, when
// given, is called with the stored key once it is unlinked. Removing an absent
// key is a caller error and returns ErrEntryNotFound. The table never shrinks.
func (t *HashTable[K, V]) Remove(key K, keyCleanup ...func(K)) (V, error) {
	t.mustBeLive()
	idx := t.index(key)
	b := t.buckets[idx]
	if b != nil {
		for it := b.Iter(); it.HasNext(); {
			e := it.Next()
			if !t.keyEqual(key, e.key) {
				continue
			}
			it.Remove()
			t.size--
			if b.Len() == 0 {
				b.Free(nil)
				t.buckets[idx] = nil
				t.numUsed--
			}
			for _, cleanup := range keyCleanup {
				if cleanup != nil {
					cleanup(e.key)
				}
			}
			return e.value, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrEntryNotFound, key)
}

// MustRemove is Remove for callers that know key is present.
func (t *HashTable[K, V]) MustRemove(key K) V {
	v, err := t.Remove(key)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *HashTable[K, V]) Size() int {
	t.mustBeLive()
	return t.size
}

// All yields every entry in bucket order, then chain order. The order is not
// stable across growth. The table must not be modified during iteration.
func (t *HashTable[K, V]) All() iter.Seq2[K, V] {
	t.mustBeLive()
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			if b == nil {
				continue
			}
			for e := range b.All() {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Destroy releases every bucket. cleanup, when given, is called once per
// stored entry so the caller can release what keys and values own. Destroy is
// idempotent; every other method panics with ErrDestroyed afterwards.
func (t *HashTable[K, V]) Destroy(cleanup ...func(K, V)) {
	if t.destroyed {
		return
	}
	t.freeBuckets(t.buckets, func(e *entry[K, V]) {
		for _, fn := range cleanup {
			if fn != nil {
				fn(e.key, e.value)
			}
		}
	})
	t.buckets = nil
	t.numUsed, t.size = 0, 0
	t.destroyed = true
}

// Teardown is Destroy with a release function that can fail. Every entry is
// released regardless of earlier failures; the errors are combined.
func (t *HashTable[K, V]) Teardown(release func(K, V) error) error {
	var err error
	t.Destroy(func(k K, v V) {
		err = multierr.Append(err, release(k, v))
	})
	return err
}

func (t *HashTable[K, V]) mustBeLive() {
	if t.destroyed {
		panic(ErrDestroyed)
	}
}

func (t *HashTable[K, V]) index(key K) int {
	// len(buckets) is a power of two, so masking is hash mod len.
	return int(t.hash(key) & uint64(len(t.buckets)-1))
}

func (t *HashTable[K, V]) lookup(key K) *entry[K, V] {
	b := t.buckets[t.index(key)]
	if b == nil {
		return nil
	}
	for e := range b.All() {
		if t.keyEqual(key, e.key) {
			return e
		}
	}
	return nil
}

// insert appends e without checking for an existing key. It reports whether
// e landed in a previously empty bucket.
func (t *HashTable[K, V]) insert(e *entry[K, V]) bool {
	idx := t.index(e.key)
	b := t.buckets[idx]
	if b == nil {
		b = chain.New[*entry[K, V]]()
		t.buckets[idx] = b
	}
	b.Push(e)
	t.size++
	if b.Len() == 1 {
		t.numUsed++
		return true
	}
	return false
}

func (t *HashTable[K, V]) overloaded() bool {
	return float64(t.numUsed) > t.loadFactor*float64(len(t.buckets))
}

func (t *HashTable[K, V]) growIfNeeded() {
	for t.overloaded() {
		if len(t.buckets) >= t.maxBuckets {
			if !t.capWarned {
				t.capWarned = true
				t.logger.Warn("hashtable reached bucket cap, load factor no longer enforced",
					zap.Int("buckets", len(t.buckets)),
					zap.Int("used", t.numUsed),
					zap.Int("size", t.size),
				)
			}
			return
		}
		t.resize(min(len(t.buckets)*2, t.maxBuckets))
	}
}

// resize rebuilds the bucket array with n buckets. Entries are re-inserted in
// old bucket order, then chain order; chain order in the new array is
// therefore not guaranteed to match the old one.
func (t *HashTable[K, V]) resize(n int) {
	from := len(t.buckets)
	old := t.buckets
	t.buckets = make([]*chain.Chain[*entry[K, V]], n)
	t.numUsed, t.size = 0, 0
	for _, b := range old {
		if b == nil {
			continue
		}
		for e := range b.All() {
			t.insert(e)
		}
	}
	// Entries moved, only the old chain nodes go.
	t.freeBuckets(old, nil)

	t.logger.Debug("hashtable resized",
		zap.Int("from", from),
		zap.Int("to", n),
		zap.Int("size", t.size),
		zap.Int("used", t.numUsed),
	)
}

func (t *HashTable[K, V]) freeBuckets(buckets []*chain.Chain[*entry[K, V]], cleanup func(*entry[K, V])) {
	for i, b := range buckets {
		if b == nil {
			continue
		}
		b.Free(cleanup)
		buckets[i] = nil
	}
}
