package purefn

import (
	"hash/maphash"
	"sync"

	"github.com/on-the-ground/chaintable/hashtable"
)

// Table is a bounded memo keyed by argument lists. It keeps two generations:
// lookups check both, stores go to the current one, and when the current one
// is full the older generation is dropped and a fresh one becomes current.
//
// A Table is safe for concurrent use. The lock is held only around table
// access, never while a memoized function runs.
type Table[O any] struct {
	mu      sync.Mutex
	gens    [2]*hashtable.HashTable[[]ComparableOrString, O]
	head    int
	maxSize int
	seed    maphash.Seed
}

func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Table[O]{
		maxSize: int(maxSize),
		seed:    maphash.MakeSeed(),
	}
	t.gens = [2]*hashtable.HashTable[[]ComparableOrString, O]{t.newGeneration(), t.newGeneration()}
	return t
}

func (t *Table[O]) newGeneration() *hashtable.HashTable[[]ComparableOrString, O] {
	return hashtable.New[[]ComparableOrString, O](t.hashKeys, equalKeys)
}

// hashKeys panics, as a map would, when an argument is not comparable.
func (t *Table[O]) hashKeys(keys []ComparableOrString) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	for _, k := range keys {
		maphash.WriteComparable(&h, k)
	}
	return h.Sum64()
}

func equalKeys(a, b []ComparableOrString) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *Table[O]) Load(keys []ComparableOrString) (O, bool) {
	if len(keys) == 0 {
		panic("load: empty keys")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.gens[t.head].Get(keys); ok {
		return v, true
	}
	return t.gens[1-t.head].Get(keys)
}

// Store records value for keys. The slice is retained and must not be
// modified afterwards.
func (t *Table[O]) Store(keys []ComparableOrString, value O) {
	if len(keys) == 0 {
		panic("store: empty keys")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.gens[t.head]
	if cur.Size() >= t.maxSize && !cur.Contains(keys) {
		t.head = 1 - t.head
		t.gens[t.head].Destroy()
		t.gens[t.head] = t.newGeneration()
		cur = t.gens[t.head]
	}
	cur.Put(keys, value)
}

// LoadOrCompute returns the memoized value for keys, running compute and
// storing its result on a miss. Concurrent misses on the same keys may each
// run compute.
func (t *Table[O]) LoadOrCompute(keys []ComparableOrString, compute func() O) O {
	if v, ok := t.Load(keys); ok {
		return v
	}
	v := compute()
	t.Store(keys, v)
	return v
}

// Len counts entries across both generations. An argument list may be
// counted twice if it was recomputed after its generation aged.
func (t *Table[O]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gens[0].Size() + t.gens[1].Size()
}
