// Package hashers provides hash and equality functions for common key types,
// ready to hand to hashtable.New or bundled as a Pair strategy.
package hashers

import (
	"bytes"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// Identity hashes an integer to itself. Dense integer keys land in distinct
// buckets until they outnumber the buckets.
func Identity[K constraints.Integer](k K) uint64 {
	return uint64(k)
}

func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Stringer hashes a key by its String form, so keys that print alike collide
// on purpose. Pair it with StringerEqual.
func Stringer[K fmt.Stringer](k K) uint64 {
	return xxhash.Sum64String(k.String())
}

func UUID(id uuid.UUID) uint64 {
	return xxhash.Sum64(id[:])
}

// Comparable returns a seeded hash for any comparable type. Each call draws a
// new seed, so hashes are only meaningful within the table that owns them.
func Comparable[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

func Equal[K comparable](a, b K) bool {
	return a == b
}

func EqualBytes(a, b []byte) bool {
	return bytes.Equal(a, b)
}

func StringerEqual[K fmt.Stringer](a, b K) bool {
	return a.String() == b.String()
}

// Pair bundles a hash function with its equality.
type Pair[K any] struct {
	HashFn  func(K) uint64
	EqualFn func(a, b K) bool
}

func (p Pair[K]) Hash(k K) uint64 {
	return p.HashFn(k)
}

func (p Pair[K]) Equal(a, b K) bool {
	return p.EqualFn(a, b)
}

func ForComparable[K comparable]() Pair[K] {
	return Pair[K]{HashFn: Comparable[K](), EqualFn: Equal[K]}
}

func ForInteger[K constraints.Integer]() Pair[K] {
	return Pair[K]{HashFn: Identity[K], EqualFn: Equal[K]}
}

func ForString() Pair[string] {
	return Pair[string]{HashFn: String, EqualFn: Equal[string]}
}

func ForBytes() Pair[[]byte] {
	return Pair[[]byte]{HashFn: Bytes, EqualFn: EqualBytes}
}

func ForStringer[K fmt.Stringer]() Pair[K] {
	return Pair[K]{HashFn: Stringer[K], EqualFn: StringerEqual[K]}
}

func ForUUID() Pair[uuid.UUID] {
	return Pair[uuid.UUID]{HashFn: UUID, EqualFn: Equal[uuid.UUID]}
}
