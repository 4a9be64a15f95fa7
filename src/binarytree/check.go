package binarytree

import (
	"fmt"

	"github.com/Nigel2392/go-datastructures/stack"
)

// Verify the bookkeeping of every reachable node.
//
// Checks stored heights, parent links, the node count and the
// ascending order of values. All violations are returned in a single integrity error.
func (t *Tree[T]) Check() error {
	var errs []error

	if t.root != nil && t.root.parent != nil {
		errs = append(errs, fmt.Errorf("root %v links to parent %v", t.root.value, t.root.parent.value))
	}

	var count int
	var pending = &stack.Stack[*Node[T]]{}
	if t.root != nil {
		pending.Push(t.root)
	}

	for n, ok := pending.PopOK(); ok; n, ok = pending.PopOK() {
		count++
		if h := n.computeHeight(); h != n.height {
			errs = append(errs, fmt.Errorf("node %v has height %d, expected %d", n.value, n.height, h))
		}
		for side, child := range n.children {
			if child == nil {
				continue
			}
			if child.parent != n {
				errs = append(errs, fmt.Errorf("%s child %v of node %v does not link back to it", Side(side), child.value, n.value))
			}
			pending.Push(child)
		}
	}

	if count != t.length {
		errs = append(errs, fmt.Errorf("tree holds %d nodes, length is %d", count, t.length))
	}

	var values = t.WalkInOrder()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			errs = append(errs, fmt.Errorf("value %v is ordered after %v", values[i], values[i-1]))
		}
	}

	return NewIntegrityError(errs)
}
