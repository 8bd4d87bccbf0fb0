// Package hashtable implements a generic, separately chained hash table.
//
// Keys are routed to one of a power-of-two number of buckets by a caller
// supplied hash function; colliding entries share a chain and are told apart
// by a caller supplied equality. The table counts buckets in use, not entries,
// and doubles its bucket array whenever a new bucket pushes that count past
// the load factor, up to a configurable cap.
//
// Ownership of keys and values stays with the caller. Destroy and Remove take
// optional cleanup callbacks for callers that want the table to hand entries
// back for release.
//
// A HashTable is meant for a single goroutine. Share it only behind a lock,
// as store.InMemory and purefn do.
//
// Example:
//
//	ht := hashtable.NewWithStrategy[string, int](hashers.ForString())
//	defer ht.Destroy()
//
//	ht.Put("answer", 42)
//	v, ok := ht.Get("answer")
package hashtable
