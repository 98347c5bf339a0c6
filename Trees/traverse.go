package Trees

import (
	"iter"
	"math/bits"

	"github.com/g-m-twostay/go-rbtree/Queues"
	"golang.org/x/exp/constraints"
)

// stack with room for a root to leaf path; the height is at most 2*log2(n+1).
func (u *base[T, S]) stack() []S {
	return make([]S, 0, 2*bits.Len64(uint64(u.size)+1))
}

// walk the indexes in in-order, or reversed in-order when backward is true, using an explicit stack.
func (u *base[T, S]) walk(backward bool, f func(S) bool) {
	st := u.stack()
	for cur := u.root; ; {
		for cur != 0 {
			st = append(st, cur)
			if backward {
				cur = u.ifs[cur].r
			} else {
				cur = u.ifs[cur].l
			}
		}
		if len(st) == 0 {
			return
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if !f(cur) {
			return
		}
		if backward {
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
}

// InOrder traversal of the tree, in ascending order.
// Space: O(log n)
func (u *RBTree[T, S]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.walk(false, func(i S) bool {
			return yield(u.vs[i-1])
		})
	}
}

// Backward is InOrder reversed, in descending order.
// Space: O(log n)
func (u *RBTree[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.walk(true, func(i S) bool {
			return yield(u.vs[i-1])
		})
	}
}

// Nodes gives the handles in in-order.
// Space: O(log n)
func (u *RBTree[T, S]) Nodes() iter.Seq[Node[T, S]] {
	return func(yield func(Node[T, S]) bool) {
		u.walk(false, func(i S) bool {
			return yield(u.node(i))
		})
	}
}

// PreOrder traversal: every node comes before its subtrees, left before right.
// Space: O(log n)
func (u *RBTree[T, S]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == 0 {
			return
		}
		for st := append(u.stack(), u.root); len(st) > 0; {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(u.vs[cur-1]) {
				return
			}
			if r := u.ifs[cur].r; r != 0 {
				st = append(st, r)
			}
			if l := u.ifs[cur].l; l != 0 {
				st = append(st, l)
			}
		}
	}
}

// PostOrder traversal: every node comes after its subtrees, left before right.
// Space: O(log n)
func (u *RBTree[T, S]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		st := u.stack()
		var last S // last yielded index.
		for cur := u.root; cur != 0 || len(st) > 0; {
			if cur != 0 {
				st = append(st, cur)
				cur = u.ifs[cur].l
				continue
			}
			top := st[len(st)-1]
			if r := u.ifs[top].r; r != 0 && r != last {
				cur = r
				continue
			}
			if !yield(u.vs[top-1]) {
				return
			}
			last, st = top, st[:len(st)-1]
		}
	}
}

type leveled[S constraints.Unsigned] struct {
	i     S
	depth int
}

// levels walks the indexes breadth first with their depths.
func (u *base[T, S]) levels(f func(int, S) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.NewArrayQueue[leveled[S]](uint(u.size/2 + 1))
	for q.Push(leveled[S]{u.root, 0}); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur.depth, cur.i) {
			return
		}
		if l := u.ifs[cur.i].l; l != 0 {
			q.Push(leveled[S]{l, cur.depth + 1})
		}
		if r := u.ifs[cur.i].r; r != 0 {
			q.Push(leveled[S]{r, cur.depth + 1})
		}
	}
}

// LevelOrder traversal, breadth first, giving each value with its depth(the root is at 0).
// Space: O(n)
func (u *RBTree[T, S]) LevelOrder() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		u.levels(func(d int, i S) bool {
			return yield(d, u.vs[i-1])
		})
	}
}

// LevelNodes is LevelOrder giving handles instead of values.
func (u *RBTree[T, S]) LevelNodes() iter.Seq2[int, Node[T, S]] {
	return func(yield func(int, Node[T, S]) bool) {
		u.levels(func(d int, i S) bool {
			return yield(d, u.node(i))
		})
	}
}
