package constraint

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// SparseVector is a fixed-size vector over fr with only the non-zero entries
// stored. Reading an absent index yields zero; writing zero removes the
// entry, so stored entries are never the additive identity.
type SparseVector struct {
	size    int
	entries map[int]fr.Element
}

// NewSparseVector returns an all-zero vector of the given size.
func NewSparseVector(size int) *SparseVector {
	return &SparseVector{
		size:    size,
		entries: make(map[int]fr.Element),
	}
}

// Size returns the vector length. Valid indices are 0 <= i < Size().
func (v *SparseVector) Size() int { return v.size }

// Set assigns v[i] = e. Setting a zero value clears the entry.
func (v *SparseVector) Set(i int, e fr.Element) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, v.size)
	}
	if e.IsZero() {
		delete(v.entries, i)
		return nil
	}
	v.entries[i] = e
	return nil
}

// Get returns v[i], the zero element if the index was never set.
func (v *SparseVector) Get(i int) (fr.Element, error) {
	if i < 0 || i >= v.size {
		return fr.Element{}, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, v.size)
	}
	return v.entries[i], nil
}

// accumulate adds e into v[i]. The index must be in range; rows are built
// internally from already-validated wire indices.
func (v *SparseVector) accumulate(i int, e fr.Element) {
	cur := v.entries[i]
	cur.Add(&cur, &e)
	if cur.IsZero() {
		delete(v.entries, i)
		return
	}
	v.entries[i] = cur
}

// Dot returns the dot product v . w over the stored entries of v.
func (v *SparseVector) Dot(w *SparseVector) fr.Element {
	var res, tmp fr.Element
	for i, c := range v.entries {
		wi := w.entries[i]
		tmp.Mul(&c, &wi)
		res.Add(&res, &tmp)
	}
	return res
}

// Dense returns the vector in dense form.
func (v *SparseVector) Dense() []fr.Element {
	res := make([]fr.Element, v.size)
	for i, c := range v.entries {
		res[i] = c
	}
	return res
}

// Clone returns a deep copy.
func (v *SparseVector) Clone() *SparseVector {
	res := NewSparseVector(v.size)
	for i, c := range v.entries {
		res.entries[i] = c
	}
	return res
}
