package Go_Utils

import (
	"math/bits"
	"testing"
)

func TestBitArray_UpDown(t *testing.T) {
	b := NewBitArray(100)
	if b.Len() < 100 {
		t.Fatalf("len is %d, want at least 100", b.Len())
	}
	for i := 0; i < 100; i += 3 {
		b.Up(i)
	}
	for i := range 100 {
		if b.Get(i) != (i%3 == 0) {
			t.Errorf("wrong bit at %d", i)
		}
	}
	if b.Count() != 34 {
		t.Errorf("count is %d, want 34", b.Count())
	}
	b.Down(99)
	if b.Get(99) || b.Count() != 33 {
		t.Errorf("bit 99 is still up")
	}
	b.Reset()
	if b.Count() != 0 {
		t.Errorf("count after reset is %d", b.Count())
	}
}

func TestBitArray_SwapGrow(t *testing.T) {
	var b BitArray
	if b.Len() != 0 {
		t.Fatalf("zero value has len %d", b.Len())
	}
	b.Grow(1)
	if b.Len() != bits.UintSize {
		t.Fatalf("len is %d, want %d", b.Len(), bits.UintSize)
	}
	if b.Swap(5) {
		t.Errorf("bit 5 was up before first swap")
	}
	if !b.Swap(5) {
		t.Errorf("bit 5 was down before second swap")
	}
	b.Grow(3 * bits.UintSize)
	if !b.Get(5) {
		t.Errorf("grow lost bit 5")
	}
	b.Up(3*bits.UintSize - 1)
	if b.Count() != 2 {
		t.Errorf("count is %d, want 2", b.Count())
	}
}
