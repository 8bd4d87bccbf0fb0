package hashers_test

import (
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/on-the-ground/chaintable/hashers"
	"github.com/stretchr/testify/assert"
)

type celsius float64

func (c celsius) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) + "C" }

func TestIdentity(t *testing.T) {
	assert.Equal(t, uint64(0), hashers.Identity(0))
	assert.Equal(t, uint64(127), hashers.Identity(int8(127)))
	assert.Equal(t, uint64(1<<40), hashers.Identity(uint64(1<<40)))
}

func TestStringAndBytesAgree(t *testing.T) {
	assert.Equal(t, hashers.String("hello"), hashers.Bytes([]byte("hello")))
	assert.NotEqual(t, hashers.String("hello"), hashers.String("hellp"))
}

func TestComparable_StableWithinSeed(t *testing.T) {
	type point struct{ X, Y int }
	h := hashers.Comparable[point]()

	assert.Equal(t, h(point{1, 2}), h(point{1, 2}))
	assert.NotEqual(t, h(point{1, 2}), h(point{2, 1}))
}

func TestStringer(t *testing.T) {
	p := hashers.ForStringer[celsius]()

	assert.Equal(t, p.Hash(celsius(21.04)), p.Hash(celsius(21.0)))
	assert.True(t, p.Equal(celsius(21.04), celsius(21.0)))
	assert.False(t, p.Equal(celsius(21.0), celsius(22.0)))
}

func TestUUID(t *testing.T) {
	id := uuid.New()
	same, err := uuid.Parse(id.String())
	assert.NoError(t, err)

	p := hashers.ForUUID()
	assert.Equal(t, p.Hash(id), p.Hash(same))
	assert.True(t, p.Equal(id, same))
	assert.False(t, p.Equal(id, uuid.New()))
}

func TestForBytes(t *testing.T) {
	p := hashers.ForBytes()
	assert.True(t, p.Equal([]byte("k"), []byte("k")))
	assert.Equal(t, p.Hash([]byte("k")), p.Hash([]byte("k")))
}
