package solver

import "math/bits"

// bitset is the candidate-value set of one cell, one bit per value index.
// Column universes are small (the largest is an alphabet), so a single
// word covers every puzzle type; newState rejects anything wider.
type bitset struct {
	bits uint64
	n    int
}

const maxUniverse = 64

func fullSet(n int) bitset {
	if n >= maxUniverse {
		return bitset{bits: ^uint64(0), n: n}
	}
	return bitset{bits: (uint64(1) << uint(n)) - 1, n: n}
}

func singleSet(v, n int) bitset {
	return bitset{bits: uint64(1) << uint(v), n: n}
}

// maskOf folds value indices into a bit mask.
func maskOf(vals []int) uint64 {
	var m uint64
	for _, v := range vals {
		if v >= 0 && v < maxUniverse {
			m |= uint64(1) << uint(v)
		}
	}
	return m
}

func (b bitset) has(v int) bool { return v >= 0 && v < b.n && b.bits&(uint64(1)<<uint(v)) != 0 }
func (b bitset) empty() bool    { return b.bits == 0 }
func (b bitset) count() int     { return bits.OnesCount64(b.bits) }

// single returns the sole remaining value, if exactly one is left.
func (b bitset) single() (int, bool) {
	if b.bits != 0 && b.bits&(b.bits-1) == 0 {
		return bits.TrailingZeros64(b.bits), true
	}
	return 0, false
}

func (b bitset) min() int { return bits.TrailingZeros64(b.bits) }
func (b bitset) max() int { return 63 - bits.LeadingZeros64(b.bits) }

// remove drops a value and reports whether the set changed.
func (b *bitset) remove(v int) bool {
	if v < 0 || v >= b.n {
		return false
	}
	old := b.bits
	b.bits &^= uint64(1) << uint(v)
	return b.bits != old
}

// keep intersects with a mask and reports whether the set changed.
func (b *bitset) keep(mask uint64) bool {
	old := b.bits
	b.bits &= mask
	return b.bits != old
}

// removeAbove drops every value greater than v.
func (b *bitset) removeAbove(v int) bool {
	if v < 0 {
		old := b.bits
		b.bits = 0
		return old != 0
	}
	return b.keep((uint64(1) << uint(v+1)) - 1)
}

// removeBelow drops every value less than v.
func (b *bitset) removeBelow(v int) bool {
	if v <= 0 {
		return false
	}
	if v >= maxUniverse {
		old := b.bits
		b.bits = 0
		return old != 0
	}
	return b.keep(^((uint64(1) << uint(v)) - 1))
}

// pop removes and returns the lowest value.
func (b *bitset) pop() (int, bool) {
	if b.bits == 0 {
		return 0, false
	}
	v := bits.TrailingZeros64(b.bits)
	b.bits &^= uint64(1) << uint(v)
	return v, true
}
