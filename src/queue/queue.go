package queue

type node[T any] struct {
	value T
	next  *node[T]
}

// A singly linked first-in first-out queue.
//
// The zero value is an empty queue.
type Queue[T any] struct {
	length int
	head   *node[T]
	tail   *node[T]
}

// Append item to the end of the queue.
func (q *Queue[T]) Enqueue(item T) {
	var n = &node[T]{value: item}
	q.length++

	if q.tail == nil {
		q.head = n
		q.tail = n
		return
	}

	q.tail.next = n
	q.tail = n
}

// Remove and return the first item of the queue.
func (q *Queue[T]) Dequeue() (item T, err error) {
	if q.head == nil {
		return item, ErrEmpty
	}

	var head = q.head
	q.head = head.next
	if q.head == nil {
		q.tail = nil
	}
	q.length--

	return head.value, nil
}

// Return the first item of the queue without removing it.
func (q *Queue[T]) Peek() (item T, err error) {
	if q.head == nil {
		return item, ErrEmpty
	}
	return q.head.value, nil
}

func (q *Queue[T]) Len() int {
	return q.length
}
