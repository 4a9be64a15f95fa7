package binarytree

import (
	"cmp"

	"github.com/Nigel2392/go-datastructures/stack"
)

// Side selects one of the two child slots of a node.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Opposite returns the other child slot.
func (s Side) Opposite() Side {
	return Right - s
}

// A single vertex of a binary tree.
//
// A node owns its children, the parent link is only a back reference.
// The height of a node is 0 for a leaf, otherwise 1 + the height of its tallest child.
type Node[T cmp.Ordered] struct {
	value    T
	children [2]*Node[T]
	parent   *Node[T]
	height   int
}

// Create a new isolated node holding the given value.
func NewNode[T cmp.Ordered](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) SetValue(value T) {
	n.value = value
}

func (n *Node[T]) Left() *Node[T] {
	return n.children[Left]
}

func (n *Node[T]) Right() *Node[T] {
	return n.children[Right]
}

func (n *Node[T]) Child(side Side) *Node[T] {
	return n.children[side]
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) Height() int {
	return n.height
}

func (n *Node[T]) IsLeaf() bool {
	return n.children[Left] == nil && n.children[Right] == nil
}

// Attach child in the given slot and return the receiver.
//
// The child is detached from its previous parent first, a child that was
// already in the slot is detached from the receiver.
// Heights are updated up to the root.
//
// Attaching the receiver itself or one of its ancestors is a no-op.
func (n *Node[T]) SetChild(side Side, child *Node[T]) *Node[T] {
	for p := n; p != nil; p = p.parent {
		if p == child {
			return n
		}
	}

	if old := n.children[side]; old != nil && old != child {
		old.parent = nil
	}

	if child != nil {
		child.detach()
		child.parent = n
	}

	n.children[side] = child
	propagateHeight(n)
	return n
}

// Deep clone the node and its descendants.
//
// The clone has its own parent links, the clone's root has no parent.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}

	var root = &Node[T]{value: n.value, height: n.height}
	var pending = &stack.Stack[clonePair[T]]{}
	pending.Push(clonePair[T]{src: n, dst: root})

	for p, ok := pending.PopOK(); ok; p, ok = pending.PopOK() {
		for side, child := range p.src.children {
			if child == nil {
				continue
			}
			var c = &Node[T]{
				value:  child.value,
				height: child.height,
				parent: p.dst,
			}
			p.dst.children[side] = c
			pending.Push(clonePair[T]{src: child, dst: c})
		}
	}

	return root
}

type clonePair[T cmp.Ordered] struct {
	src, dst *Node[T]
}

// side reports which slot of its parent n occupies.
func (n *Node[T]) side() Side {
	if n.parent != nil && n.parent.children[Right] == n {
		return Right
	}
	return Left
}

// detach removes n from its parent's child slot.
func (n *Node[T]) detach() {
	var parent = n.parent
	if parent == nil {
		return
	}
	parent.children[n.side()] = nil
	n.parent = nil
	propagateHeight(parent)
}

func (n *Node[T]) computeHeight() int {
	var h = -1
	for _, child := range n.children {
		if child != nil && child.height > h {
			h = child.height
		}
	}
	return h + 1
}

// propagateHeight recomputes heights from n upward,
// stopping at the first node whose height did not change.
func propagateHeight[T cmp.Ordered](n *Node[T]) {
	for ; n != nil; n = n.parent {
		var h = n.computeHeight()
		if h == n.height {
			return
		}
		n.height = h
	}
}
