package stack

type node[T any] struct {
	value T
	prev  *node[T]
}

// A singly linked last-in first-out stack.
//
// The zero value is an empty stack.
type Stack[T any] struct {
	length int
	head   *node[T]
}

func (s *Stack[T]) Push(item T) {
	s.head = &node[T]{value: item, prev: s.head}
	s.length++
}

// Remove and return the most recently pushed item.
func (s *Stack[T]) Pop() (item T, err error) {
	if s.head == nil {
		return item, ErrEmpty
	}
	var head = s.head
	s.head = head.prev
	s.length--
	return head.value, nil
}

// Return the most recently pushed item without removing it.
func (s *Stack[T]) Peek() (item T, err error) {
	if s.head == nil {
		return item, ErrEmpty
	}
	return s.head.value, nil
}

func (s *Stack[T]) Len() int {
	return s.length
}
