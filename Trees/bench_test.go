package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bAddN = 1 << 16

var (
	bKeys   = rg.Perm(bAddN)
	sideEff bool
)

func BenchmarkRBTree_Insert(b *testing.B) {
	for range b.N {
		tree := New[int, uint32](0)
		for _, k := range bKeys {
			tree.Insert(k)
		}
	}
}

func BenchmarkRBTree_InsertHint(b *testing.B) {
	for range b.N {
		tree := New[int, uint32](bAddN)
		for _, k := range bKeys {
			tree.Insert(k)
		}
	}
}

func BenchmarkRBTree_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := New[int, uint32](bAddN)
		for _, k := range bKeys {
			tree.Insert(k)
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Remove(k)
		}
	}
}

func BenchmarkRBTree_Has(b *testing.B) {
	tree := New[int, uint32](bAddN)
	for _, k := range bKeys {
		tree.Insert(k * 2)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = tree.Has(i % (2 * bAddN))
	}
}

func BenchmarkRBTree_InOrder(b *testing.B) {
	tree := New[int, uint32](bAddN)
	for _, k := range bKeys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for range b.N {
		for v := range tree.InOrder() {
			sideEff = v < 0
		}
	}
}

func BenchmarkGods_Insert(b *testing.B) {
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkGods_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := redblacktree.NewWithIntComparator()
		for _, k := range bKeys {
			tree.Put(k, struct{}{})
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Remove(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		tree := btree.NewG[int](32, btree.Less[int]())
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkBTree_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := btree.NewG[int](32, btree.Less[int]())
		for _, k := range bKeys {
			tree.ReplaceOrInsert(k)
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Delete(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		tree := llrb.New()
		for _, k := range bKeys {
			tree.InsertNoReplace(llrb.Int(k))
		}
	}
}

func BenchmarkLLRB_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := llrb.New()
		for _, k := range bKeys {
			tree.InsertNoReplace(llrb.Int(k))
		}
		b.StartTimer()
		for k := range bAddN {
			tree.Delete(llrb.Int(k))
		}
	}
}
