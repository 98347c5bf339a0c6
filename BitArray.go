package Go_Utils

import (
	"math/bits"
)

// NewBitArray with room for at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed set of bits addressed from 0. Grow it explicitly when more bits are needed.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Swap sets bit i up and returns its previous state.
func (u BitArray) Swap(i int) bool {
	w, m := &u.bits[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	old := *w&m != 0
	*w |= m
	return old
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Grow so that Len()>=size. Existing bits are kept.
func (u *BitArray) Grow(size int) {
	if n := (size + bits.UintSize - 1) / bits.UintSize; n > len(u.bits) {
		u.bits = append(u.bits, make([]uint, n-len(u.bits))...)
	}
}

// Reset every bit to down.
func (u BitArray) Reset() {
	clear(u.bits)
}
