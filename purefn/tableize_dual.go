package purefn

type pair[O1, O2 any] struct {
	first  O1
	second O2
}

func makePair[O1, O2 any](o1 O1, o2 O2) pair[O1, O2] {
	return pair[O1, O2]{first: o1, second: o2}
}

func (p pair[O1, O2]) unpack() (O1, O2) {
	return p.first, p.second
}

func TableizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
) func(I1) (O1, O2) {
	fn := TableizeI1O1(func(i1 I1) pair[O1, O2] {
		return makePair[O1, O2](pureFn(i1))
	}, maxTableSize)
	return func(i1 I1) (O1, O2) {
		return fn(i1).unpack()
	}
}

func TableizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
	maxTableSize uint32,
) func(I1, I2) (O1, O2) {
	fn := TableizeI2O1(func(i1 I1, i2 I2) pair[O1, O2] {
		return makePair[O1, O2](pureFn(i1, i2))
	}, maxTableSize)
	return func(i1 I1, i2 I2) (O1, O2) {
		return fn(i1, i2).unpack()
	}
}

func TableizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3) (O1, O2) {
	fn := TableizeI3O1(func(i1 I1, i2 I2, i3 I3) pair[O1, O2] {
		return makePair[O1, O2](pureFn(i1, i2, i3))
	}, maxTableSize)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return fn(i1, i2, i3).unpack()
	}
}

func TableizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
	maxTableSize uint32,
) func(I1, I2, I3, I4) (O1, O2) {
	fn := TableizeI4O1(func(i1 I1, i2 I2, i3 I3, i4 I4) pair[O1, O2] {
		return makePair[O1, O2](pureFn(i1, i2, i3, i4))
	}, maxTableSize)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return fn(i1, i2, i3, i4).unpack()
	}
}
