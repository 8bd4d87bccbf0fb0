package hashtable_test

import (
	"strconv"
	"testing"

	"github.com/on-the-ground/chaintable/hashers"
	"github.com/on-the-ground/chaintable/hashtable"
)

func BenchmarkHashTable_PutGrow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ht := hashtable.NewWithStrategy[int, int](hashers.ForInteger[int]())
		for k := 0; k < 1<<14; k++ {
			ht.Put(k, k)
		}
		ht.Destroy()
	}
}

func BenchmarkHashTable_GetString(b *testing.B) {
	ht := hashtable.NewWithStrategy[string, int](hashers.ForString())
	defer ht.Destroy()
	keys := make([]string, 1<<12)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		ht.Put(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ht.Get(keys[i&(len(keys)-1)])
	}
}

func BenchmarkBuiltinMap_GetString(b *testing.B) {
	m := make(map[string]int)
	keys := make([]string, 1<<12)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		m[keys[i]] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i&(len(keys)-1)]]
	}
}
