package chain

import (
	"errors"
	"iter"
)

var ErrNoCurrent = errors.New("iterator has no current element")

type node[T any] struct {
	val  T
	next *node[T]
}

// Chain is an ordered, singly linked sequence used as the collision list of a
// hash bucket. It is not safe for concurrent use.
type Chain[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Push appends val at the end of the chain.
func (c *Chain[T]) Push(val T) {
	n := &node[T]{val: val}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.len++
}

func (c *Chain[T]) Len() int {
	return c.len
}

// Free drops every element, calling cleanup on each of them first when given.
// The chain is empty afterwards.
func (c *Chain[T]) Free(cleanup func(T)) {
	for n := c.head; n != nil; {
		next := n.next
		if cleanup != nil {
			cleanup(n.val)
		}
		n.next = nil
		n = next
	}
	c.head, c.tail, c.len = nil, nil, 0
}

// Iter returns a forward iterator positioned before the first element.
func (c *Chain[T]) Iter() *Iterator[T] {
	return &Iterator[T]{c: c, next: c.head}
}

// All yields the elements in order. The sequence must not be used to mutate
// the chain; use Iter for removal during iteration.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Iterator walks a Chain front to back. Remove excises the element returned by
// the last call to Next without disturbing the walk.
type Iterator[T any] struct {
	c    *Chain[T]
	prev *node[T]
	cur  *node[T]
	next *node[T]
}

func (it *Iterator[T]) HasNext() bool {
	return it.next != nil
}

// Next advances and returns the new current element. It panics when the chain
// is exhausted.
func (it *Iterator[T]) Next() T {
	if it.next == nil {
		panic("chain: Next called on exhausted iterator")
	}
	if it.cur != nil {
		it.prev = it.cur
	}
	it.cur = it.next
	it.next = it.cur.next
	return it.cur.val
}

// Remove unlinks the current element. Calling it twice for the same element,
// or before the first Next, panics with ErrNoCurrent.
func (it *Iterator[T]) Remove() {
	if it.cur == nil {
		panic(ErrNoCurrent)
	}
	if it.prev == nil {
		it.c.head = it.cur.next
	} else {
		it.prev.next = it.cur.next
	}
	if it.c.tail == it.cur {
		it.c.tail = it.prev
	}
	it.cur.next = nil
	it.cur = nil
	it.c.len--
}
