package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

// Random streams of inserts and removes checked against gods' red-black tree used as a multiset
// (key -> count) and against google/btree for the ascending order.
func TestTree_Differential(t *testing.T) {
	tree := New[int, uint32](0)
	oracle := redblacktree.NewWithIntComparator()
	for step := range 20000 {
		k := rg.Intn(2000)
		if rg.Intn(3) == 0 {
			c, found := oracle.Get(k)
			if removed := tree.Remove(k); removed != found {
				t.Fatalf("step %d: removed %d is %v, oracle has it %v", step, k, removed, found)
			}
			if found {
				if c.(int) == 1 {
					oracle.Remove(k)
				} else {
					oracle.Put(k, c.(int)-1)
				}
			}
		} else {
			if _, e := tree.Insert(k); e != nil {
				t.Fatal(e)
			}
			c, _ := oracle.Get(k)
			n, _ := c.(int)
			oracle.Put(k, n+1)
		}
		if step%2500 != 0 {
			continue
		}
		if e := tree.Verify(); e != nil {
			t.Fatalf("step %d: %v", step, e)
		}
		mn, okMin := tree.Min()
		mx, okMax := tree.Max()
		if okMin != !oracle.Empty() || okMax != !oracle.Empty() {
			t.Fatalf("step %d: emptiness differs", step)
		}
		if okMin && (mn.Key() != oracle.Left().Key.(int) || mx.Key() != oracle.Right().Key.(int)) {
			t.Fatalf("step %d: min %d max %d, oracle %v %v", step, mn.Key(), mx.Key(), oracle.Left().Key, oracle.Right().Key)
		}
	}
	var want []int
	it := oracle.Iterator()
	for it.Next() {
		for range it.Value().(int) {
			want = append(want, it.Key().(int))
		}
	}
	got := collect(tree.InOrder())
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("wrong key at %d: %d, want %d", i, got[i], want[i])
		}
	}

	// distinct keys against a btree.
	bt := btree.NewG[int](32, btree.Less[int]())
	for _, k := range want {
		bt.ReplaceOrInsert(k)
	}
	i := 0
	bt.Ascend(func(k int) bool {
		f, okF := tree.Floor(k)
		c, okC := tree.Ceil(k)
		if !okF || !okC || f.Key() != k || c.Key() != k {
			t.Errorf("floor or ceil of %d is missing", k)
			return false
		}
		i++
		return true
	})
	if i != bt.Len() {
		t.Errorf("visited %d of %d distinct keys", i, bt.Len())
	}
}
