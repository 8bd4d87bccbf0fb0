package store

// Equatable lets values define their own equality for CompareAndSwap and
// CompareAndDelete. Values that do not implement it are compared with ==.
type Equatable interface {
	Equals(other any) bool
}

func Equals(a, b any) bool {
	if ea, ok := a.(Equatable); ok {
		return ea.Equals(b)
	}
	return a == b
}

// CasStore is a key/value store with compare-and-set semantics.
type CasStore[K any] interface {
	Load(key K) (value any, ok bool, err error)
	InsertIfAbsent(key K, value any) (inserted bool, err error)
	CompareAndSwap(key K, old, new any) (swapped bool, err error)
	CompareAndDelete(key K, old any) (deleted bool, err error)
}

// SetStore is a key/value store with last-writer-wins semantics, such as a cache.
type SetStore[K any] interface {
	Get(key K) (value any, ok bool, err error)
	Set(key K, value any) error
	Delete(key K) error
}
