package Trees

import "golang.org/x/exp/constraints"

// color of a node. The zero value is black, so the zero info is a valid sentinel.
type color uint8

const (
	black color = iota
	red
)

func (c color) String() string {
	switch c {
	case black:
		return "black"
	case red:
		return "red"
	default:
		return "invalid"
	}
}

// A node in the RBTree, addressed by its index in the arena.
// The zero value is meaningful: it's the sentinel at index 0, black with all links at 0.
// gen is odd while the slot holds a live node and even while it sits in the free list.
type info[S constraints.Unsigned] struct {
	l, r, p S
	c       color
	gen     uint32
}

// Node is a borrowed handle to a node in a RBTree. It stays valid until that node is deleted
// or the tree is cleared; other mutations may change its neighbors but never its key.
// The zero value is the "not found" handle and is never valid.
type Node[T any, S constraints.Unsigned] struct {
	t   *RBTree[T, S]
	i   S
	gen uint32
}

// Valid reports whether n still refers to a live node of its tree.
func (n Node[T, S]) Valid() bool {
	return n.t != nil && n.i != 0 && uint64(n.i) < uint64(len(n.t.ifs)) && n.t.ifs[n.i].gen == n.gen
}

// Key of the node. Panics with InvalidHandleError if n isn't valid.
func (n Node[T, S]) Key() T {
	if n.t == nil {
		panic(&InvalidHandleError{Op: "Key", Reason: "zero handle"})
	}
	return n.t.Key(n)
}

// Red reports whether the node is colored red. Panics with InvalidHandleError if n isn't valid.
func (n Node[T, S]) Red() bool {
	if n.t == nil {
		panic(&InvalidHandleError{Op: "Red", Reason: "zero handle"})
	}
	return n.t.ifs[n.t.check(n, "Red")].c == red
}

// rotateLeft promotes the right child y of x into x's place, x becomes the left child of y,
// and y's former left subtree becomes x's right subtree. x's right child mustn't be the sentinel.
// Only links change; the root is updated when x was the root.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) {
	ifs := u.ifs
	y := ifs[x].r
	if ifs[x].r = ifs[y].l; ifs[y].l != 0 {
		ifs[ifs[y].l].p = x
	}
	u.transplant(x, y)
	ifs[y].l, ifs[x].p = x, y
}

// rotateRight is the mirror of rotateLeft. x's left child mustn't be the sentinel.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(x S) {
	ifs := u.ifs
	y := ifs[x].l
	if ifs[x].l = ifs[y].r; ifs[y].r != 0 {
		ifs[ifs[y].r].p = x
	}
	u.transplant(x, y)
	ifs[y].r, ifs[x].p = x, y
}
