package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree. T is the type of values it will hold, S is the type of the
// indexes of the underlying arena, which also bounds the number of nodes to the max value of S.
// Equal values are allowed; a value equal to an existing one is placed after it in in-order.
// The height of the tree is at most 2*log2(n+1).
// RBTree isn't safe for concurrent use; the caller must serialize all calls that overlap with
// Insert, Delete, Remove or Clear, including any iteration in progress.
type RBTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	cmp func(T, T) int
}

var _ OrderedTree[int, Node[int, uint32]] = (*RBTree[int, uint32])(nil)

// New empty tree for ordered values. hint is the number of nodes to reserve room for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *RBTree[T, S] {
	return &RBTree[T, S]{makeBase[T](hint), cmp.Compare[T]}
}

// NewC is the equivalence of New for any values ordered by the given comparison function.
func NewC[T any, S constraints.Unsigned](hint S, cmp func(T, T) int) *RBTree[T, S] {
	return &RBTree[T, S]{makeBase[T](hint), cmp}
}

func (u *RBTree[T, S]) node(i S) Node[T, S] {
	return Node[T, S]{u, i, u.ifs[i].gen}
}

// nodeOk wraps index i as the result of a query.
func (u *RBTree[T, S]) nodeOk(i S) (Node[T, S], bool) {
	if i == 0 {
		return Node[T, S]{}, false
	}
	return u.node(i), true
}

// check that n is a live handle of u and return its index. Panics with InvalidHandleError otherwise.
func (u *RBTree[T, S]) check(n Node[T, S], op string) S {
	switch {
	case n.t == nil || n.i == 0:
		panic(&InvalidHandleError{Op: op, Reason: "zero handle"})
	case n.t != u:
		panic(&InvalidHandleError{Op: op, Index: uint64(n.i), Reason: "handle belongs to another tree"})
	case uint64(n.i) >= uint64(len(u.ifs)):
		panic(&InvalidHandleError{Op: op, Index: uint64(n.i), Reason: "index out of range"})
	case u.ifs[n.i].gen != n.gen:
		panic(&InvalidHandleError{Op: op, Index: uint64(n.i), Reason: "node was deleted"})
	}
	return n.i
}

// Insert v to the tree and return the handle to its node. The only failure is when the tree
// already holds as many nodes as S can index, in which case an AllocationError is returned
// and the tree is left unmodified.
// Time: O(log n)
func (u *RBTree[T, S]) Insert(v T) (Node[T, S], error) {
	y, less := S(0), false
	for x := u.root; x != 0; {
		y = x
		if less = u.cmp(v, u.vs[x-1]) < 0; less {
			x = u.ifs[x].l
		} else {
			x = u.ifs[x].r
		}
	}
	z, e := u.alloc(v)
	if e != nil {
		return Node[T, S]{}, e
	}
	if u.ifs[z].p = y; y == 0 {
		u.root = z
	} else if less {
		u.ifs[y].l = z
	} else {
		u.ifs[y].r = z
	}
	u.insertFixup(z)
	u.size++
	return u.node(z), nil
}

// Delete the node of handle n. n and every other handle to that node become invalid; handles to
// other nodes stay valid. Panics with InvalidHandleError if n isn't a live handle of this tree.
// Time: O(log n)
func (u *RBTree[T, S]) Delete(n Node[T, S]) {
	u.unlink(u.check(n, "Delete"))
}

// Remove one node equal to v. Returns false if there's none.
// Time: O(log n)
func (u *RBTree[T, S]) Remove(v T) bool {
	if i := u.search(v); i != 0 {
		u.unlink(i)
		return true
	}
	return false
}

// Clear the tree. All handles become invalid; the arena keeps its memory for later inserts.
// Time: O(capacity)
func (u *RBTree[T, S]) Clear() {
	for i := len(u.ifs) - 1; i > 0; i-- {
		if u.ifs[i].gen&1 == 1 {
			u.release(S(i))
		}
	}
	u.root, u.size = 0, 0
}

func (u *RBTree[T, S]) search(v T) S {
	for x := u.root; x != 0; {
		if order := u.cmp(v, u.vs[x-1]); order < 0 {
			x = u.ifs[x].l
		} else if order > 0 {
			x = u.ifs[x].r
		} else {
			return x
		}
	}
	return 0
}

// Search for a node equal to v. Without mutations in between, the same handle is returned every time.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Search(v T) (Node[T, S], bool) {
	return u.nodeOk(u.search(v))
}

// Has a node equal to v.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Has(v T) bool {
	return u.search(v) != 0
}

// Key of the node of handle n. Panics with InvalidHandleError if n isn't a live handle of this tree.
func (u *RBTree[T, S]) Key(n Node[T, S]) T {
	return u.vs[u.check(n, "Key")-1]
}

// Min is the first node in in-order. The bool is false iff the tree is empty.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Min() (Node[T, S], bool) {
	return u.nodeOk(u.minimum(u.root))
}

// Max is the last node in in-order. The bool is false iff the tree is empty.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Max() (Node[T, S], bool) {
	return u.nodeOk(u.maximum(u.root))
}

// Predecessor of n in in-order. The bool is false when n is the first node.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Predecessor(n Node[T, S]) (Node[T, S], bool) {
	return u.nodeOk(u.prev(u.check(n, "Predecessor")))
}

// Successor of n in in-order. The bool is false when n is the last node.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Successor(n Node[T, S]) (Node[T, S], bool) {
	return u.nodeOk(u.next(u.check(n, "Successor")))
}

// Floor is the last node whose value is <= v.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Floor(v T) (Node[T, S], bool) {
	var p S
	for x := u.root; x != 0; {
		if u.cmp(v, u.vs[x-1]) < 0 {
			x = u.ifs[x].l
		} else {
			p = x
			x = u.ifs[x].r
		}
	}
	return u.nodeOk(p)
}

// Ceil is the first node whose value is >= v.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) Ceil(v T) (Node[T, S], bool) {
	var p S
	for x := u.root; x != 0; {
		if u.cmp(v, u.vs[x-1]) > 0 {
			x = u.ifs[x].r
		} else {
			p = x
			x = u.ifs[x].l
		}
	}
	return u.nodeOk(p)
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[T, S]) Size() uint {
	return uint(u.size)
}
