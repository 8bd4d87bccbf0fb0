// Package purefn memoizes pure functions by their arguments.
//
// Wrapping a function with Tableize is a claim about it: the result depends
// on the arguments and nothing else, so a call can be answered from a lookup
// table. Do not wrap functions that read the clock, do I/O or touch shared
// state.
//
// TableizeI1O1 through TableizeI4O2 cover one to four inputs and one or two
// outputs. Each memoizer owns a Table made of two hash table generations.
// When the current generation reaches maxTableSize entries the older one is
// dropped and a fresh one takes its place, so memory stays bounded without
// per-entry bookkeeping.
//
// Arguments must be comparable or implement fmt.Stringer; Stringers are keyed
// by their String form. Other arguments panic on the first call.
//
// Example:
//
//	var fib func(int) int
//	fib = purefn.TableizeI1O1(func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	}, 128)
package purefn
