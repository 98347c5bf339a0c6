package TreeSet

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-rbtree/Sets"
	"github.com/g-m-twostay/go-rbtree/Trees"
)

var (
	_ Sets.SortedSet[int]   = (*TreeSet[int])(nil)
	_ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)
)

// TreeSet is a sorted set backed by a red-black tree. It holds at most 2^32-1 elements. Not safe for concurrent use.
type TreeSet[E any] struct {
	t *Trees.RBTree[E, uint32]
}

// New TreeSet of ordered elements. size is the number of elements to reserve room for.
func New[E cmp.Ordered](size uint32) *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E](size)}
}

// NewC is New for elements ordered by cmp.
func NewC[E any](size uint32, cmp func(E, E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewC(size, cmp)}
}

// Size of the set.
func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Put e in the set. Returns false if an equal element is already there, or the set is full.
// Time: O(log n)
func (u *TreeSet[E]) Put(e E) bool {
	if u.t.Has(e) {
		return false
	}
	_, err := u.t.Insert(e)
	return err == nil
}

// Has an element equal to e.
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

// Take the smallest element from the set without removing it. Returns zero value if the set is empty.
func (u *TreeSet[E]) Take() (e E) {
	if n, ok := u.t.Min(); ok {
		e = n.Key()
	}
	return
}

// PopMin removes and returns the smallest element.
func (u *TreeSet[E]) PopMin() (e E, ok bool) {
	var n Trees.Node[E, uint32]
	if n, ok = u.t.Min(); ok {
		e = n.Key()
		u.t.Delete(n)
	}
	return
}

// Range over the elements in ascending order and call f on them. Stops when f returns false.
// The set mustn't be modified by f.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for e := range u.t.InOrder() {
		if !f(e) {
			return
		}
	}
}

// All elements in ascending order.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.t.InOrder()
}

// Descending is All reversed.
func (u *TreeSet[E]) Descending() iter.Seq[E] {
	return u.t.Backward()
}

func key[E any](n Trees.Node[E, uint32], ok bool) (e E, _ bool) {
	if ok {
		e = n.Key()
	}
	return e, ok
}

func (u *TreeSet[E]) Min() (E, bool) {
	return key(u.t.Min())
}

func (u *TreeSet[E]) Max() (E, bool) {
	return key(u.t.Max())
}

// Floor is the greatest element <= e.
func (u *TreeSet[E]) Floor(e E) (E, bool) {
	return key(u.t.Floor(e))
}

// Ceil is the least element >= e.
func (u *TreeSet[E]) Ceil(e E) (E, bool) {
	return key(u.t.Ceil(e))
}

// Clear the set, keeping its memory.
func (u *TreeSet[E]) Clear() {
	u.t.Clear()
}

// PutAll elements of s into u. Returns the number of new elements.
func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (c uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			c++
		}
		return true
	})
	return
}

// RemoveAll elements of s from u. Returns the number of removed elements.
func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (c uint) {
	s.Range(func(e E) bool {
		if u.t.Remove(e) {
			c++
		}
		return true
	})
	return
}

// Eq checks whether u and s hold the same elements.
func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.t.Has(e)
		return eq
	})
	return eq
}

// Intersect keeps only the elements that are also in s.
func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	u.Filter(s.Has)
}

// Filter keeps only the elements for which f returns true.
func (u *TreeSet[E]) Filter(f func(E) bool) {
	var drop []Trees.Node[E, uint32]
	for n := range u.t.Nodes() {
		if !f(n.Key()) {
			drop = append(drop, n)
		}
	}
	for _, n := range drop {
		u.t.Delete(n)
	}
}
