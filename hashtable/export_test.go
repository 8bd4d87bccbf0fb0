package hashtable

// Introspection is the bucket bookkeeping of a table, for assertions only.
type Introspection struct {
	NumBuckets int
	NumUsed    int
	LoadFactor float64
}

func Inspect[K, V any](t *HashTable[K, V]) Introspection {
	return Introspection{
		NumBuckets: len(t.buckets),
		NumUsed:    t.numUsed,
		LoadFactor: t.loadFactor,
	}
}

// BucketLens returns the chain length of every bucket, 0 for empty ones.
func BucketLens[K, V any](t *HashTable[K, V]) []int {
	lens := make([]int, len(t.buckets))
	for i, b := range t.buckets {
		if b != nil {
			lens[i] = b.Len()
		}
	}
	return lens
}

// BucketKeys returns the keys chained in bucket i, in chain order.
func BucketKeys[K, V any](t *HashTable[K, V], i int) []K {
	var keys []K
	if b := t.buckets[i]; b != nil {
		for e := range b.All() {
			keys = append(keys, e.key)
		}
	}
	return keys
}
