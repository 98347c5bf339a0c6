package TreeSet

import (
	"math/rand"
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestTreeSet_All(t *testing.T) {
	S := New[int](7)
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 || S.Take() != 5 {
		t.Errorf("wrong size %d or take %d", S.Size(), S.Take())
	}
}

func TestTreeSet_Order(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	S, want := New[int](0), map[int]struct{}{}
	for range 3000 {
		k := rg.Intn(1000)
		S.Put(k)
		want[k] = struct{}{}
	}
	var got []int
	S.Range(func(e int) bool {
		got = append(got, e)
		return true
	})
	if len(got) != len(want) || !slices.IsSorted(got) {
		t.Fatalf("range gave %d elements, sorted %v", len(got), slices.IsSorted(got))
	}
	desc := slices.Collect(S.Descending())
	slices.Reverse(desc)
	if !slices.Equal(got, desc) {
		t.Error("descending isn't the reverse of ascending")
	}
	if f, ok := S.Floor(got[3] - 1); ok && f != got[2] && got[3]-1 != got[2] {
		t.Errorf("wrong floor %d", f)
	}
	if c, ok := S.Ceil(got[0] - 1); !ok || c != got[0] {
		t.Errorf("wrong ceil %d", c)
	}
	if _, ok := S.Ceil(got[len(got)-1] + 1); ok {
		t.Error("ceil past the max")
	}
	for i := range got {
		e, ok := S.PopMin()
		if !ok || e != got[i] {
			t.Fatalf("pop %d gave %d, want %d", i, e, got[i])
		}
	}
	if _, ok := S.PopMin(); ok || S.Size() != 0 {
		t.Error("set isn't empty")
	}
}

func TestTreeSet_Extended(t *testing.T) {
	a, b := New[int](0), New[int](0)
	for i := range 20 {
		a.Put(i)
		if i%2 == 0 {
			b.Put(i)
		}
	}
	if a.PutAll(b) != 0 {
		t.Error("nothing is new")
	}
	if a.Eq(b) {
		t.Error("not equal")
	}
	a.Intersect(b)
	if !a.Eq(b) || !b.Eq(a) {
		t.Error("intersection should equal b")
	}
	a.Filter(func(e int) bool { return e < 10 })
	if a.Size() != 5 {
		t.Errorf("wrong size %d after filter", a.Size())
	}
	if b.RemoveAll(a) != 5 || b.Size() != 5 {
		t.Error("wrong remove all")
	}
	a.Clear()
	if a.Size() != 0 || a.Has(0) {
		t.Error("wrong clear")
	}
}

func TestTreeSet_Comparator(t *testing.T) {
	S := NewC[string](0, func(x, y string) int { return strings.Compare(strings.ToLower(x), strings.ToLower(y)) })
	S.Put("b")
	if S.Put("B") {
		t.Error("case insensitive duplicate")
	}
	S.Put("A")
	S.Put("c")
	if got := slices.Collect(S.All()); !slices.Equal(got, []string{"A", "b", "c"}) {
		t.Errorf("got %v", got)
	}
	if m, _ := S.Max(); m != "c" {
		t.Errorf("wrong max %v", m)
	}
}

func TestSyncTreeSet_Parallel(t *testing.T) {
	const workers, each = 8, 500
	S := NewSync[int](0)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()
			for i := range each {
				S.Put(w*each + i)
				S.Has(i)
			}
		}()
	}
	wg.Wait()
	if S.Size() != workers*each {
		t.Fatalf("wrong size %d", S.Size())
	}
	prev := -1
	S.Range(func(e int) bool {
		if e != prev+1 {
			t.Errorf("%d after %d", e, prev)
		}
		prev = e
		return true
	})
	if e, ok := S.PopMin(); !ok || e != 0 || S.Take() != 1 || !S.Remove(1) {
		t.Error("wrong pop")
	}
}
