package binarytree

import (
	"cmp"

	"github.com/Nigel2392/go-datastructures/stack"
)

type order int

const (
	preOrder order = iota
	inOrder
	postOrder
)

type frame[T cmp.Ordered] struct {
	node *Node[T]
	// expanded frames have had their children pushed, next pop yields the value.
	expanded bool
}

// A lazy depth-first traversal over a (sub)tree.
//
// Each call to Next produces one value, an iterator can be abandoned at any time.
// Mutating the tree while iterating is not supported.
type Iterator[T cmp.Ordered] struct {
	order   order
	pending *stack.Stack[frame[T]]
}

func newIterator[T cmp.Ordered](root *Node[T], o order) *Iterator[T] {
	var it = &Iterator[T]{
		order:   o,
		pending: &stack.Stack[frame[T]]{},
	}
	it.push(root, false)
	return it
}

// Iterate node, left subtree, right subtree.
func IterPreOrder[T cmp.Ordered](node *Node[T]) (*Iterator[T], error) {
	if node == nil {
		return nil, ErrInvalidNode
	}
	return newIterator(node, preOrder), nil
}

// Iterate left subtree, node, right subtree.
func IterInOrder[T cmp.Ordered](node *Node[T]) (*Iterator[T], error) {
	if node == nil {
		return nil, ErrInvalidNode
	}
	return newIterator(node, inOrder), nil
}

// Iterate left subtree, right subtree, node.
func IterPostOrder[T cmp.Ordered](node *Node[T]) (*Iterator[T], error) {
	if node == nil {
		return nil, ErrInvalidNode
	}
	return newIterator(node, postOrder), nil
}

// Return the next value of the traversal, ok is false once it is exhausted.
func (it *Iterator[T]) Next() (value T, ok bool) {
	for {
		var f, more = it.pending.PopOK()
		if !more {
			return value, false
		}
		if f.expanded {
			return f.node.value, true
		}
		it.expand(f.node)
	}
}

// Drain the remaining values into a slice.
func (it *Iterator[T]) Collect() []T {
	var values = make([]T, 0)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}
	return values
}

// Frames are pushed in the reverse of the order they are visited.
func (it *Iterator[T]) expand(n *Node[T]) {
	var left, right = n.children[Left], n.children[Right]
	switch it.order {
	case preOrder:
		it.push(right, false)
		it.push(left, false)
		it.push(n, true)
	case inOrder:
		it.push(right, false)
		it.push(n, true)
		it.push(left, false)
	case postOrder:
		it.push(n, true)
		it.push(right, false)
		it.push(left, false)
	}
}

func (it *Iterator[T]) push(n *Node[T], expanded bool) {
	if n == nil {
		return
	}
	it.pending.Push(frame[T]{node: n, expanded: expanded})
}
