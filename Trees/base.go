package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the arena shared by all the operations that don't need to compare values.
// ifs[0] is the sentinel; the value of ifs[i] is vs[i-1].
type base[T any, S constraints.Unsigned] struct {
	root, free, size S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs              []info[S]
	vs               []T
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, uint64(hint)+1), vs: make([]T, 0, hint)}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a red node holding v with all links at the sentinel. Holes are filled first before
// appending to the underlying arrays. Fails when every index representable by S is in use.
func (u *base[T, S]) alloc(v T) (S, error) {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{c: red, gen: u.ifs[i].gen + 1}
		u.vs[i-1] = v
		return i, nil
	}
	if limit := uint64(^S(0)); uint64(len(u.vs)) >= limit {
		return 0, &AllocationError{Limit: limit}
	}
	u.ifs = append(u.ifs, info[S]{c: red, gen: 1})
	u.vs = append(u.vs, v)
	return S(len(u.vs)), nil
}

// release a detached node. Its handles become stale.
func (u *base[T, S]) release(i S) {
	u.ifs[i] = info[S]{gen: u.ifs[i].gen + 1}
	u.vs[i-1] = *new(T)
	u.addFree(i)
}

// transplant replaces the subtree rooted at x with the one rooted at y. y may be the sentinel,
// in which case only the sentinel's parent link is written.
func (u *base[T, S]) transplant(x, y S) {
	if p := u.ifs[x].p; p == 0 {
		u.root = y
	} else if x == u.ifs[p].l {
		u.ifs[p].l = y
	} else {
		u.ifs[p].r = y
	}
	u.ifs[y].p = u.ifs[x].p
}

func (u *base[T, S]) minimum(x S) S {
	for u.ifs[x].l != 0 {
		x = u.ifs[x].l
	}
	return x
}

func (u *base[T, S]) maximum(x S) S {
	for u.ifs[x].r != 0 {
		x = u.ifs[x].r
	}
	return x
}

// next in in-order after x, 0 at the end.
func (u *base[T, S]) next(x S) S {
	if r := u.ifs[x].r; r != 0 {
		return u.minimum(r)
	}
	y := u.ifs[x].p
	for y != 0 && x == u.ifs[y].r {
		x, y = y, u.ifs[y].p
	}
	return y
}

// prev in in-order before x, 0 at the start.
func (u *base[T, S]) prev(x S) S {
	if l := u.ifs[x].l; l != 0 {
		return u.maximum(l)
	}
	y := u.ifs[x].p
	for y != 0 && x == u.ifs[y].l {
		x, y = y, u.ifs[y].p
	}
	return y
}

// insertFixup restores the root color and the no red-red property after z was linked as a red leaf.
// At most 2 rotations.
func (u *base[T, S]) insertFixup(z S) {
	ifs := u.ifs
	for ifs[ifs[z].p].c == red {
		p := ifs[z].p
		g := ifs[p].p // p is red, so it isn't the root and g is a real node.
		if p == ifs[g].l {
			if y := ifs[g].r; ifs[y].c == red {
				ifs[p].c, ifs[y].c, ifs[g].c = black, black, red
				z = g
				continue
			}
			if z == ifs[p].r { // inner grandchild, make it outer.
				z = p
				u.rotateLeft(z)
				p = ifs[z].p
			}
			ifs[p].c, ifs[g].c = black, red
			u.rotateRight(g)
		} else {
			if y := ifs[g].l; ifs[y].c == red {
				ifs[p].c, ifs[y].c, ifs[g].c = black, black, red
				z = g
				continue
			}
			if z == ifs[p].l {
				z = p
				u.rotateRight(z)
				p = ifs[z].p
			}
			ifs[p].c, ifs[g].c = black, red
			u.rotateLeft(g)
		}
	}
	ifs[u.root].c = black
}

// unlink the live node z from the tree, rebalance, then release its slot.
// Nodes other than z keep their indexes, so their handles stay valid.
func (u *base[T, S]) unlink(z S) {
	ifs := u.ifs
	var x S // the node moving into the vacated position, possibly the sentinel.
	removed := ifs[z].c
	if ifs[z].l == 0 {
		x = ifs[z].r
		u.transplant(z, x)
	} else if ifs[z].r == 0 {
		x = ifs[z].l
		u.transplant(z, x)
	} else {
		y := u.minimum(ifs[z].r)
		removed, x = ifs[y].c, ifs[y].r
		if ifs[y].p == z {
			ifs[x].p = y
		} else {
			u.transplant(y, x)
			ifs[y].r = ifs[z].r
			ifs[ifs[y].r].p = y
		}
		u.transplant(z, y)
		ifs[y].l = ifs[z].l
		ifs[ifs[y].l].p = y
		ifs[y].c = ifs[z].c
	}
	if removed == black {
		u.deleteFixup(x)
	}
	ifs[0].p = 0
	u.release(z)
	u.size--
}

// deleteFixup pushes the missing black at x up the tree until it can be absorbed.
// x may be the sentinel, whose parent link was set by unlink. At most 3 rotations.
func (u *base[T, S]) deleteFixup(x S) {
	ifs := u.ifs
	for x != u.root && ifs[x].c == black {
		p := ifs[x].p
		if x == ifs[p].l {
			w := ifs[p].r
			if ifs[w].c == red {
				ifs[w].c, ifs[p].c = black, red
				u.rotateLeft(p)
				w = ifs[p].r
			}
			if ifs[ifs[w].l].c == black && ifs[ifs[w].r].c == black {
				ifs[w].c = red
				x = p
				continue
			}
			if ifs[ifs[w].r].c == black {
				ifs[ifs[w].l].c, ifs[w].c = black, red
				u.rotateRight(w)
				w = ifs[p].r
			}
			ifs[w].c, ifs[p].c, ifs[ifs[w].r].c = ifs[p].c, black, black
			u.rotateLeft(p)
		} else {
			w := ifs[p].l
			if ifs[w].c == red {
				ifs[w].c, ifs[p].c = black, red
				u.rotateRight(p)
				w = ifs[p].l
			}
			if ifs[ifs[w].r].c == black && ifs[ifs[w].l].c == black {
				ifs[w].c = red
				x = p
				continue
			}
			if ifs[ifs[w].l].c == black {
				ifs[ifs[w].r].c, ifs[w].c = black, red
				u.rotateLeft(w)
				w = ifs[p].l
			}
			ifs[w].c, ifs[p].c, ifs[ifs[w].l].c = ifs[p].c, black, black
			u.rotateRight(p)
		}
		x = u.root
	}
	ifs[x].c = black
}
