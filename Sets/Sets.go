package Sets

import "iter"

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// SortedSet is a Set whose Range goes in ascending order.
type SortedSet[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
	Floor(E) (E, bool)
	Ceil(E) (E, bool)
	All() iter.Seq[E]
}

type ExtendedSet[E any] interface {
	PutAll(Set[E]) uint
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Intersect(Set[E])
	Filter(func(E) bool)
}
