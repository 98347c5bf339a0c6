package Trees

import "iter"

// OrderedTree represents an ordered collection of values stored in nodes. N is the type of
// the node handles it gives out.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x N, false). In this
// case x is the zero handle and mustn't be used.
// Handles are borrowed: they're valid until their node is deleted. Passing an invalid handle
// is a programming error and panics.
// Methods implemented recursively should be noted, otherwise functions are implemented iteratively.
type OrderedTree[T any, N any] interface {
	//Insert v to the tree, returning the handle of the new node.
	//Exact failure conditions depend on implementation.
	Insert(v T) (N, error)
	//Delete the node of handle n.
	Delete(n N)
	//Remove one node equal to v. Returning true if successful, false otherwise.
	Remove(v T) bool
	//Search for a node equal to v.
	Search(v T) (N, bool)
	//Has a node equal to v.
	Has(v T) bool
	//Key of the node of handle n.
	Key(n N) T
	//Min node of the tree.
	Min() (N, bool)
	//Max node of the tree.
	Max() (N, bool)
	//Predecessor of the node n in in-order.
	Predecessor(n N) (N, bool)
	//Successor of the node n in in-order.
	Successor(n N) (N, bool)
	//Size of the tree.
	Size() uint
	//InOrder returns the values in ascending order. The sequence can be
	//ranged over any number of times. The tree must not be modified during
	//the iteration, otherwise the order of the remaining values is undefined.
	InOrder() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}
