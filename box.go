package cratepack

import (
	"sort"

	"github.com/google/uuid"
)

// Box is an immutable box type: outer and inner dimensions, empty weight,
// and max payload. Two boxes with identical dimensions still have distinct
// identities (ID); the quantity map is keyed by identity, never by value,
// so two otherwise-identical stock SKUs are never conflated.
type Box struct {
	ID          uuid.UUID
	Name        string
	OuterLength int
	OuterWidth  int
	OuterDepth  int
	InnerLength int
	InnerWidth  int
	InnerDepth  int
	EmptyWeight int
	MaxPayload  int
}

// NewBox builds a Box with a fresh identity.
func NewBox(name string, outerLength, outerWidth, outerDepth, innerLength, innerWidth, innerDepth, emptyWeight, maxPayload int) *Box {
	return &Box{
		ID:          uuid.New(),
		Name:        name,
		OuterLength: outerLength,
		OuterWidth:  outerWidth,
		OuterDepth:  outerDepth,
		InnerLength: innerLength,
		InnerWidth:  innerWidth,
		InnerDepth:  innerDepth,
		EmptyWeight: emptyWeight,
		MaxPayload:  maxPayload,
	}
}

// InnerVolume returns the box's usable inner volume.
func (b *Box) InnerVolume() int64 {
	return int64(b.InnerLength) * int64(b.InnerWidth) * int64(b.InnerDepth)
}

func (b *Box) validate() error {
	if b.OuterLength <= 0 || b.OuterWidth <= 0 || b.OuterDepth <= 0 {
		return invalidInput("box outer dimensions must be positive")
	}
	if b.InnerLength <= 0 || b.InnerWidth <= 0 || b.InnerDepth <= 0 {
		return invalidInput("box inner dimensions must be positive")
	}
	if b.InnerLength > b.OuterLength || b.InnerWidth > b.OuterWidth || b.InnerDepth > b.OuterDepth {
		return invalidInput("box inner dimensions cannot exceed outer dimensions")
	}
	if b.EmptyWeight < 0 || b.MaxPayload < 0 {
		return invalidInput("box weight and payload cannot be negative")
	}
	return nil
}

// BoxList is a slice of Boxes that knows how to order itself for the
// multi-box packing loop.
type BoxList []*Box

// SortByInnerVolumeDesc returns a new slice ordered by inner volume DESC,
// the order the outer packing loop evaluates candidate box types in.
func (l BoxList) SortByInnerVolumeDesc() BoxList {
	out := make(BoxList, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].InnerVolume() > out[j].InnerVolume()
	})
	return out
}

// Quantities maps a Box's opaque identity to the number of that box type
// still available. It is cloned at the entry of every top-level Packer
// call so a caller's quantity table is never mutated by the packer.
type Quantities map[uuid.UUID]int

// Clone returns an independent copy of the quantity table.
func (q Quantities) Clone() Quantities {
	out := make(Quantities, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}

// unboundedQuantity stands in for "sufficiently large" when the local
// re-pack performed during weight redistribution offers back the box slot
// the subset being re-packed already occupies (see WeightRedistributor).
const unboundedQuantity = int(^uint(0) >> 1)
