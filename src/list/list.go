package list

type node[T comparable] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// An index and value pair produced by Entries.
type Entry[T comparable] struct {
	Index int
	Value T
}

// A doubly linked list.
//
// The zero value is an empty list.
type DoublyLinkedList[T comparable] struct {
	length int
	head   *node[T]
	tail   *node[T]
}

func (l *DoublyLinkedList[T]) Len() int {
	return l.length
}

// Insert item at the head of the list.
func (l *DoublyLinkedList[T]) Prepend(item T) {
	var n = &node[T]{value: item, next: l.head}
	l.length++

	if l.head == nil {
		l.head = n
		l.tail = n
		return
	}

	l.head.prev = n
	l.head = n
}

// Insert item at the tail of the list.
func (l *DoublyLinkedList[T]) Append(item T) {
	var n = &node[T]{value: item, prev: l.tail}
	l.length++

	if l.tail == nil {
		l.head = n
		l.tail = n
		return
	}

	l.tail.next = n
	l.tail = n
}

// Insert item so that it ends up at index.
//
// An index equal to the length appends.
func (l *DoublyLinkedList[T]) InsertAt(item T, index int) error {
	switch {
	case index < 0 || index > l.length:
		return ErrIndexOutOfRange
	case index == l.length:
		l.Append(item)
		return nil
	case index == 0:
		l.Prepend(item)
		return nil
	}

	var curr = l.nodeAt(index)
	var n = &node[T]{
		value: item,
		next:  curr,
		prev:  curr.prev,
	}
	curr.prev.next = n
	curr.prev = n
	l.length++
	return nil
}

// Remove the first node, counting from the head, holding item.
func (l *DoublyLinkedList[T]) Remove(item T) (value T, err error) {
	if l.length == 0 {
		return value, ErrEmpty
	}

	for n := l.head; n != nil; n = n.next {
		if n.value == item {
			return l.removeNode(n), nil
		}
	}

	return value, ErrNotFound
}

func (l *DoublyLinkedList[T]) Get(index int) (value T, err error) {
	if err = l.checkIndex(index); err != nil {
		return value, err
	}
	return l.nodeAt(index).value, nil
}

func (l *DoublyLinkedList[T]) RemoveAt(index int) (value T, err error) {
	if err = l.checkIndex(index); err != nil {
		return value, err
	}
	return l.removeNode(l.nodeAt(index)), nil
}

// Stream the entries from head to tail.
//
// The channel is closed after the last entry, or once done is closed.
//
//	done := make(chan struct{})
//	defer close(done)
//	for entry := range list.Entries(done) {
//		fmt.Println(entry.Index, entry.Value)
//	}
func (l *DoublyLinkedList[T]) Entries(done <-chan struct{}) <-chan Entry[T] {
	var entries = make(chan Entry[T])

	go func() {
		defer close(entries)
		var index int
		for n := l.head; n != nil; n = n.next {
			select {
			case entries <- Entry[T]{Index: index, Value: n.value}:
			case <-done:
				return
			}
			index++
		}
	}()

	return entries
}

func (l *DoublyLinkedList[T]) checkIndex(index int) error {
	if l.length == 0 {
		return ErrEmpty
	}
	if index < 0 || index >= l.length {
		return ErrIndexOutOfRange
	}
	return nil
}

// nodeAt walks from whichever end is closest, index must be in range.
func (l *DoublyLinkedList[T]) nodeAt(index int) *node[T] {
	if index < l.length/2 {
		var n = l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}

	var n = l.tail
	for i := l.length - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

func (l *DoublyLinkedList[T]) removeNode(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.next = nil
	n.prev = nil
	l.length--
	return n.value
}
