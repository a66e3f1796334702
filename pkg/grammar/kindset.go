package grammar

import (
	"github.com/RoaringBitmap/roaring/v2"
	sitter "github.com/smacker/go-tree-sitter"
)

// KindSet is an immutable set of grammar symbol ids.
// The zero value is an empty set.
type KindSet struct {
	bits *roaring.Bitmap
}

// Has reports whether the node's kind is in the set.
func (s KindSet) Has(n *sitter.Node) bool {
	if n == nil || s.bits == nil {
		return false
	}
	return s.bits.Contains(uint32(n.Symbol()))
}

// Contains reports whether a raw symbol id is in the set.
func (s KindSet) Contains(sym uint32) bool {
	return s.bits != nil && s.bits.Contains(sym)
}

// Len returns the number of symbol ids in the set.
func (s KindSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.GetCardinality())
}

// Empty reports whether the set has no members.
func (s KindSet) Empty() bool {
	return s.bits == nil || s.bits.IsEmpty()
}

// Union returns a new set holding the members of s and every other set.
func (s KindSet) Union(others ...KindSet) KindSet {
	bm := roaring.New()
	if s.bits != nil {
		bm.Or(s.bits)
	}
	for _, o := range others {
		if o.bits != nil {
			bm.Or(o.bits)
		}
	}
	return KindSet{bits: bm}
}

// Symbols returns the members in ascending order.
func (s KindSet) Symbols() []uint32 {
	if s.bits == nil {
		return nil
	}
	return s.bits.ToArray()
}
