package binarytree

import (
	"cmp"
	"encoding/json"
	"fmt"

	"github.com/Nigel2392/go-datastructures/stack"
	"github.com/xlab/treeprint"
)

// A binary search tree which keeps parent links and node heights up to date.
//
// Values ascend from left to right, equal values are inserted to the left.
// The tree is not rebalanced and may degrade to a linear height.
//
// The zero value is an empty tree. A tree is not safe for concurrent use.
type Tree[T cmp.Ordered] struct {
	root   *Node[T]
	length int
}

// Initialize a new tree with the given root value.
func New[T cmp.Ordered](value T) *Tree[T] {
	return &Tree[T]{
		root:   NewNode(value),
		length: 1,
	}
}

// Initialize a new tree adopting root and its descendants.
//
// The root is detached from its parent, if any. A nil root gives an empty tree.
func NewFromNode[T cmp.Ordered](root *Node[T]) *Tree[T] {
	var t = &Tree[T]{}
	t.adopt(root)
	return t
}

func (t *Tree[T]) adopt(root *Node[T]) {
	if root != nil {
		root.detach()
	}
	t.root = root
	t.length = 0
	for it := newIterator(root, preOrder); ; t.length++ {
		if _, ok := it.Next(); !ok {
			break
		}
	}
}

func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Return the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Return the height of the root, -1 for an empty tree.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return -1
	}
	return t.root.height
}

// Clear the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.length = 0
}

func (t *Tree[T]) WalkPreOrder() []T {
	return t.IterPreOrder().Collect()
}

func (t *Tree[T]) WalkInOrder() []T {
	return t.IterInOrder().Collect()
}

func (t *Tree[T]) WalkPostOrder() []T {
	return t.IterPostOrder().Collect()
}

// Lazily iterate the tree in pre-order, an empty tree yields nothing.
func (t *Tree[T]) IterPreOrder() *Iterator[T] {
	return newIterator(t.root, preOrder)
}

// Lazily iterate the tree in-order, an empty tree yields nothing.
func (t *Tree[T]) IterInOrder() *Iterator[T] {
	return newIterator(t.root, inOrder)
}

// Lazily iterate the tree in post-order, an empty tree yields nothing.
func (t *Tree[T]) IterPostOrder() *Iterator[T] {
	return newIterator(t.root, postOrder)
}

// Compare the shape and values of the tree with the subtree rooted at other.
func (t *Tree[T]) CompareShapeAndValues(other *Node[T]) bool {
	return CompareShapeAndValues(t.root, other)
}

// Depth first comparison of two subtrees.
//
// Returns true if both have the same shape and the same value at every position.
func CompareShapeAndValues[T cmp.Ordered](a, b *Node[T]) bool {
	var pending = &stack.Stack[[2]*Node[T]]{}
	pending.Push([2]*Node[T]{a, b})

	for pair, ok := pending.PopOK(); ok; pair, ok = pending.PopOK() {
		var curr, other = pair[0], pair[1]
		switch {
		case curr == nil && other == nil:
			// Hit terminus node of both trees
			continue
		case curr == nil || other == nil:
			// Hit terminus node of only one tree
			return false
		case curr.value != other.value:
			return false
		}
		pending.Push([2]*Node[T]{curr.children[Right], other.children[Right]})
		pending.Push([2]*Node[T]{curr.children[Left], other.children[Left]})
	}

	return true
}

// Report whether item is present in the tree.
func (t *Tree[T]) QuickFind(item T) bool {
	var _, ok = t.Search(item)
	return ok
}

// Search for, and return, the first node holding item.
func (t *Tree[T]) Search(item T) (n *Node[T], ok bool) {
	var curr = t.root
	for curr != nil {
		if item == curr.value {
			return curr, true
		}
		if curr.value < item {
			curr = curr.children[Right]
		} else {
			curr = curr.children[Left]
		}
	}
	return nil, false
}

// Insert item as a new leaf.
func (t *Tree[T]) Insert(item T) {
	var leaf = NewNode(item)
	t.length++

	if t.root == nil {
		t.root = leaf
		return
	}

	var curr = t.root
	for {
		var side = Left
		if curr.value < item {
			side = Right
		}

		var next = curr.children[side]
		if next == nil {
			curr.children[side] = leaf
			leaf.parent = curr
			propagateHeight(curr)
			return
		}
		curr = next
	}
}

// Delete the first node holding item from the tree.
//
// A node with two children is replaced by the innermost node of its taller subtree,
// the left subtree wins a tie.
func (t *Tree[T]) Delete(item T) (deleted bool) {
	var node, ok = t.Search(item)
	if !ok {
		return false
	}

	var left, right = node.children[Left], node.children[Right]
	switch {
	case left == nil && right == nil:
		var parent = node.parent
		t.replace(node, nil)
		propagateHeight(parent)
	case left == nil || right == nil:
		var child = left
		if child == nil {
			child = right
		}
		var parent = node.parent
		t.replace(node, child)
		propagateHeight(parent)
	default:
		t.promote(node)
	}

	node.parent = nil
	node.children = [2]*Node[T]{}
	t.length--
	return true
}

// replace puts n into the slot old occupies, or at the root.
func (t *Tree[T]) replace(old, n *Node[T]) {
	var parent = old.parent
	if n != nil {
		n.parent = parent
	}
	if parent == nil {
		t.root = n
		return
	}
	parent.children[old.side()] = n
}

// promote replaces a node that has two children.
func (t *Tree[T]) promote(node *Node[T]) {
	var from = Left
	if node.children[Right].height > node.children[Left].height {
		from = Right
	}
	var toward = from.Opposite()

	var repl = node.children[from]
	for repl.children[toward] != nil {
		repl = repl.children[toward]
	}

	var start = repl.parent
	if start == node {
		start = repl
	} else {
		// the replacement's own child moves up into the vacated slot
		var inner = repl.children[from]
		start.children[toward] = inner
		if inner != nil {
			inner.parent = start
		}
		repl.children[from] = node.children[from]
		repl.children[from].parent = repl
	}

	repl.children[toward] = node.children[toward]
	repl.children[toward].parent = repl
	repl.height = node.height

	t.replace(node, repl)
	propagateHeight(start)
}

// Return the tree as a string.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ""
	}
	var tree = treeprint.NewWithRoot(fmt.Sprint(t.root.value))
	addBranches(tree, t.root)
	return tree.String()
}

func addBranches[T cmp.Ordered](branch treeprint.Tree, n *Node[T]) {
	for side, child := range n.children {
		if child == nil {
			continue
		}
		var label = fmt.Sprintf("%s: %v", Side(side), child.value)
		if child.IsLeaf() {
			branch.AddNode(label)
			continue
		}
		addBranches(branch.AddBranch(label), child)
	}
}

func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.root.ToStructured())
}

// Replace the tree's contents with the decoded structured form, null decodes to an empty tree.
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	var s *Structured[T]
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != nil && s.Item == nil {
		return ErrMissingItem
	}
	t.adopt(FromStructured(s))
	return nil
}
