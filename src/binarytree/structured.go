package binarytree

import (
	"cmp"
	"encoding/json"
)

// The plain-data form of a (sub)tree.
//
//	{"item": 5, "children": {"left": {"item": 3}, "right": {"item": 69}}}
//
// Children is nil when the node has no children,
// and each side is nil when that child is absent.
type Structured[T any] struct {
	Item     *T           `json:"item,omitempty"`
	Children *Children[T] `json:"children,omitempty"`
}

type Children[T any] struct {
	Left  *Structured[T] `json:"left,omitempty"`
	Right *Structured[T] `json:"right,omitempty"`
}

// Convenience constructor for structured literals.
func Item[T any](item T, children ...*Structured[T]) *Structured[T] {
	var s = &Structured[T]{Item: &item}
	switch len(children) {
	case 0:
	case 1:
		s.Children = &Children[T]{Left: children[0]}
	default:
		s.Children = &Children[T]{Left: children[0], Right: children[1]}
	}
	if s.Children != nil && s.Children.Left == nil && s.Children.Right == nil {
		s.Children = nil
	}
	return s
}

// Convert the node and its descendants into the structured form.
//
// A nil node converts to nil.
func (n *Node[T]) ToStructured() *Structured[T] {
	if n == nil {
		return nil
	}

	var item = n.value
	var s = &Structured[T]{Item: &item}

	var left = n.children[Left].ToStructured()
	var right = n.children[Right].ToStructured()
	if left != nil || right != nil {
		s.Children = &Children[T]{
			Left:  left,
			Right: right,
		}
	}

	return s
}

// Build a subtree from its structured form.
//
// Parent links are wired and heights computed bottom-up.
// Returns nil if s is nil or has no item, children without an item are skipped.
func FromStructured[T cmp.Ordered](s *Structured[T]) *Node[T] {
	if s == nil || s.Item == nil {
		return nil
	}

	var n = NewNode(*s.Item)
	if s.Children != nil {
		n.attach(Left, FromStructured(s.Children.Left))
		n.attach(Right, FromStructured(s.Children.Right))
	}
	n.height = n.computeHeight()

	return n
}

// attach links a freshly built child without propagating heights.
func (n *Node[T]) attach(side Side, child *Node[T]) {
	if child == nil {
		return
	}
	child.parent = n
	n.children[side] = child
}

func (n *Node[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToStructured())
}

// Decode the structured JSON form into n.
//
// The decoded node has no parent.
func (n *Node[T]) UnmarshalJSON(data []byte) error {
	var s Structured[T]
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	var built = FromStructured(&s)
	if built == nil {
		return ErrMissingItem
	}

	*n = *built
	for _, child := range n.children {
		if child != nil {
			child.parent = n
		}
	}
	return nil
}
