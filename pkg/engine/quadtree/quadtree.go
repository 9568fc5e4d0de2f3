// Package quadtree provides a generic 4-ary tree where every internal node has
// exactly four children, one per spatial quadrant.
package quadtree

import (
	"errors"
	"fmt"
	"iter"

	"github.com/zyedidia/generic/stack"
)

// Quadrants is the number of children of a stem node
const Quadrants = 4

var (
	// ErrLeafIndex is returned when a child is requested from a leaf
	ErrLeafIndex = errors.New("quadtree: leaf has no children")

	// ErrQuadrant is returned for a child index outside 0..3
	ErrQuadrant = errors.New("quadtree: quadrant out of range")

	// ErrTooDeep is returned when a tree would grow past MaxLevels
	ErrTooDeep = errors.New("quadtree: deeper than a path can encode")
)

// Tree is either a leaf holding a value or a stem holding exactly four
// children. The zero value is a leaf holding the zero value of T.
type Tree[T any] struct {
	value    T
	children *[Quadrants]*Tree[T]
}

// New creates a single leaf holding value
func New[T any](value T) *Tree[T] {
	return &Tree[T]{value: value}
}

// IsLeaf returns true if the node has no children
func (t *Tree[T]) IsLeaf() bool {
	return t.children == nil
}

// Value returns the payload of a leaf. The second result is false for stems.
func (t *Tree[T]) Value() (T, bool) {
	if !t.IsLeaf() {
		var zero T
		return zero, false
	}
	return t.value, true
}

// SetValue turns the node into a terminal leaf holding value, dropping any
// children it had.
func (t *Tree[T]) SetValue(value T) {
	t.value = value
	t.children = nil
}

// Subdivide turns a leaf into a stem of four leaves that each hold a copy of
// the leaf's value. On a stem it subdivides every child, so each call deepens
// the whole tree by one level.
func (t *Tree[T]) Subdivide() {
	if !t.IsLeaf() {
		for _, child := range t.children {
			child.Subdivide()
		}
		return
	}

	var children [Quadrants]*Tree[T]
	for i := range children {
		children[i] = New(t.value)
	}
	t.children = &children

	var zero T
	t.value = zero
}

// Child returns the child in quadrant q of a stem
func (t *Tree[T]) Child(q int) (*Tree[T], error) {
	if q < 0 || q >= Quadrants {
		return nil, fmt.Errorf("%w: %d", ErrQuadrant, q)
	}
	if t.IsLeaf() {
		return nil, ErrLeafIndex
	}
	return t.children[q], nil
}

// Set replaces the child in quadrant q of a stem
func (t *Tree[T]) Set(q int, child *Tree[T]) error {
	if q < 0 || q >= Quadrants {
		return fmt.Errorf("%w: %d", ErrQuadrant, q)
	}
	if t.IsLeaf() {
		return ErrLeafIndex
	}
	if child == nil {
		var zero T
		child = New(zero)
	}
	t.children[q] = child
	return nil
}

// Depth returns the number of levels below this node; a leaf has depth 0
func (t *Tree[T]) Depth() int {
	if t.IsLeaf() {
		return 0
	}
	deepest := 0
	for _, child := range t.children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Leaves returns the number of leaf nodes in the tree
func (t *Tree[T]) Leaves() int {
	n := 0
	for range t.Entries() {
		n++
	}
	return n
}

// Entry is one flattened leaf: where it sits in the tree and what it holds
type Entry[T any] struct {
	Path  Path
	Depth int
	Value T
}

type frame[T any] struct {
	node  *Tree[T]
	path  Path
	depth int
}

// Entries lazily walks the tree depth first and yields one Entry per leaf.
// Siblings are visited in quadrant order 0, 1, 2, 3.
func (t *Tree[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		pending := stack.New[frame[T]]()
		pending.Push(frame[T]{node: t})

		for pending.Size() > 0 {
			f := pending.Pop()
			if f.node.IsLeaf() {
				if !yield(Entry[T]{Path: f.path, Depth: f.depth, Value: f.node.value}) {
					return
				}
				continue
			}

			// Pushed in reverse so quadrant 0 comes off the stack first
			for q := Quadrants - 1; q >= 0; q-- {
				pending.Push(frame[T]{
					node:  f.node.children[q],
					path:  f.path.With(f.depth, q),
					depth: f.depth + 1,
				})
			}
		}
	}
}
