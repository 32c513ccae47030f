package register

// MEM is a bit-vector handle: an ordered, least-significant-bit-first
// sequence of vertex identifiers. MEM is a lightweight view - splitting
// and merging return new handles that alias the same underlying vertex
// identifiers; no new vertices are allocated by Lower/Upper/Merge.
type MEM struct {
	// Bits holds the vertex identifiers, index 0 is the least significant
	// bit.
	Bits []int
}

// New wraps an existing bit sequence as a MEM. Used by arith code that
// builds result bits directly (e.g. the adder's XOR/AND outputs).
func New(bits []int) MEM {
	cp := make([]int, len(bits))
	copy(cp, bits)

	return MEM{Bits: cp}
}

// Len returns the number of bits in m.
func (m MEM) Len() int {
	return len(m.Bits)
}

// LowerHalf returns the bits in [0, n/2), preserving LSB-first order.
func (m MEM) LowerHalf() MEM {
	return New(m.Bits[:m.Len()/2])
}

// UpperHalf returns the bits in [n/2, n), preserving LSB-first order.
func (m MEM) UpperHalf() MEM {
	return New(m.Bits[m.Len()/2:])
}

// Merge concatenates m's bits with other's bits, other following m, and
// preserves LSB-first ordering across the join:
// m.LowerHalf().Merge(m.UpperHalf()) reconstructs m exactly.
func (m MEM) Merge(other MEM) MEM {
	out := make([]int, 0, m.Len()+other.Len())
	out = append(out, m.Bits...)
	out = append(out, other.Bits...)

	return New(out)
}
