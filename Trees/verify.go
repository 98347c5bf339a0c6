package Trees

import (
	"fmt"

	Go_Utils "github.com/g-m-twostay/go-rbtree"
)

func corrupt(i uint64, format string, args ...any) *CorruptError {
	return &CorruptError{Index: i, Reason: fmt.Sprintf(format, args...)}
}

// Verify checks every red-black and binary search tree property, the parent links, and that the
// nodes reachable from the root are exactly the live ones. It returns a CorruptError describing the
// first violation found, nil if there's none.
// Time: O(n); Space: O(capacity/8+log n)
func (u *RBTree[T, S]) Verify() error {
	ifs := u.ifs
	if ifs[0] != (info[S]{}) {
		return corrupt(0, "sentinel was modified: %+v", ifs[0])
	}
	if u.root == 0 {
		if u.size != 0 {
			return corrupt(0, "empty tree has size %d", u.size)
		}
	} else if ifs[u.root].p != 0 {
		return corrupt(uint64(u.root), "root has parent %d", ifs[u.root].p)
	} else if ifs[u.root].c != black {
		return corrupt(uint64(u.root), "root is %v", ifs[u.root].c)
	}

	type frame struct {
		i  S
		bh int // black nodes from the root to i, inclusive.
	}
	seen := Go_Utils.NewBitArray(len(ifs))
	bh, count := -1, 0
	for st := []frame{{u.root, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.i == 0 {
			if bh == -1 {
				bh = f.bh
			} else if bh != f.bh {
				return corrupt(0, "paths with %d and %d black nodes", bh, f.bh)
			}
			continue
		}
		n := ifs[f.i]
		if uint64(n.l) >= uint64(len(ifs)) || uint64(n.r) >= uint64(len(ifs)) {
			return corrupt(uint64(f.i), "child index out of range")
		}
		if seen.Swap(int(f.i)) {
			return corrupt(uint64(f.i), "reachable more than once")
		}
		if n.gen&1 == 0 {
			return corrupt(uint64(f.i), "free slot is linked")
		}
		count++
		switch n.c {
		case black:
			f.bh++
		case red:
			if ifs[n.l].c == red || ifs[n.r].c == red {
				return corrupt(uint64(f.i), "red node has a red child")
			}
		default:
			return corrupt(uint64(f.i), "color is %v", n.c)
		}
		for _, c := range [2]S{n.l, n.r} {
			if c != 0 && ifs[c].p != f.i {
				return corrupt(uint64(c), "parent is %d, want %d", ifs[c].p, f.i)
			}
		}
		if n.l != 0 && u.cmp(u.vs[n.l-1], u.vs[f.i-1]) > 0 {
			return corrupt(uint64(f.i), "left child is greater")
		}
		if n.r != 0 && u.cmp(u.vs[n.r-1], u.vs[f.i-1]) < 0 {
			return corrupt(uint64(f.i), "right child is less")
		}
		st = append(st, frame{n.r, f.bh}, frame{n.l, f.bh})
	}
	if count != int(u.size) {
		return corrupt(0, "%d reachable nodes, size is %d", count, u.size)
	}
	for i := 1; i < len(ifs); i++ {
		if ifs[i].gen&1 == 1 && !seen.Get(i) {
			return corrupt(uint64(i), "live node is unreachable")
		}
	}

	var prev S
	var err error
	u.walk(false, func(i S) bool {
		if prev != 0 && u.cmp(u.vs[prev-1], u.vs[i-1]) > 0 {
			err = corrupt(uint64(i), "in-order goes down after node %d", prev)
			return false
		}
		prev = i
		return true
	})
	return err
}

// Corrupt [OrderedTree.Corrupt]
func (u *RBTree[T, S]) Corrupt() bool {
	return u.Verify() != nil
}

// Height is the number of edges on the longest path from the root down to a node, 0 for an empty tree.
// Time: O(n); Space: O(log n)
func (u *RBTree[T, S]) Height() int {
	if u.root == 0 {
		return 0
	}
	type frame struct {
		i S
		d int
	}
	h := 0
	for st := []frame{{u.root, 0}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, f.d)
		if l := u.ifs[f.i].l; l != 0 {
			st = append(st, frame{l, f.d + 1})
		}
		if r := u.ifs[f.i].r; r != 0 {
			st = append(st, frame{r, f.d + 1})
		}
	}
	return h
}

// BlackHeight of the root: the black nodes below it down to a sentinel, counting the sentinel.
// 0 for an empty tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[T, S]) BlackHeight() (bh int) {
	if u.root == 0 {
		return 0
	}
	for x := u.ifs[u.root].l; ; x = u.ifs[x].l {
		if u.ifs[x].c == black {
			bh++
		}
		if x == 0 {
			return bh
		}
	}
}
