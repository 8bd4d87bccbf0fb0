package purefn

import (
	"fmt"
)

// ComparableOrStringer is an argument type that is either comparable or
// implements fmt.Stringer. Anything else panics on first call.
type ComparableOrStringer any

type ComparableOrString any

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memo := NewTable[O1](maxTableSize)
	return func(i1 I1) O1 {
		return memo.LoadOrCompute(tableKeys(i1), func() O1 {
			return pureFn(i1)
		})
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	memo := NewTable[O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return memo.LoadOrCompute(tableKeys(i1, i2), func() O1 {
			return pureFn(i1, i2)
		})
	}
}

func TableizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
	maxTableSize uint32,
) func(I1, I2, I3) O1 {
	memo := NewTable[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return memo.LoadOrCompute(tableKeys(i1, i2, i3), func() O1 {
			return pureFn(i1, i2, i3)
		})
	}
}

func TableizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	maxTableSize uint32,
) func(I1, I2, I3, I4) O1 {
	memo := NewTable[O1](maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return memo.LoadOrCompute(tableKeys(i1, i2, i3, i4), func() O1 {
			return pureFn(i1, i2, i3, i4)
		})
	}
}

// tableKeys keys Stringers by their String form so that otherwise
// non-comparable arguments can still be memoized.
func tableKeys(args ...ComparableOrStringer) []ComparableOrString {
	keys := make([]ComparableOrString, len(args))
	for i, arg := range args {
		if stringer, ok := arg.(fmt.Stringer); ok {
			keys[i] = stringer.String()
		} else {
			keys[i] = arg
		}
	}
	return keys
}
