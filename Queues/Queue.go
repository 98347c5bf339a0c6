package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The bool is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
