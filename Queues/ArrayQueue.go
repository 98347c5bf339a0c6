package Queues

const minArrCap = 4

// ArrayQueue is a Queue backed by a circular slice. The zero value is an empty queue.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

func NewArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, max(initCap, minArrCap))}
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// resize the backing slice to newLen>=sz, moving the items to the front.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

// Shrink the backing slice to fit the current items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(max(u.sz, minArrCap))
}

// Clear the queue, keeping its capacity.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(max(l*3/2, minArrCap))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *ArrayQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *ArrayQueue[T]) Peek() (item T, has bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
