package Trees

import "fmt"

// AllocationError is returned by Insert when there's no index left to hold a new node.
type AllocationError struct {
	Limit uint64 // the maximum number of nodes.
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("Tree is Full: cannot hold more than %d nodes.", e.Limit)
}

// InvalidHandleError is the value of the panic raised when a handle that's zero, stale, or
// from another tree is passed to a tree.
type InvalidHandleError struct {
	Op     string
	Index  uint64
	Reason string
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("%s: invalid handle %d: %s", e.Op, e.Index, e.Reason)
}

// CorruptError describes the first violated property found by Verify.
type CorruptError struct {
	Index  uint64 // the arena index of the offending node, 0 for the sentinel or the tree itself.
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt tree at node %d: %s", e.Index, e.Reason)
}
