package cratepack

import (
	"sort"

	"github.com/google/uuid"
)

// RotationPolicy controls which permutations of an Item's three dimensions
// are legal orientations.
type RotationPolicy int

const (
	// RotationNever allows only the item's natural (length, width, depth).
	RotationNever RotationPolicy = iota
	// RotationKeepFlat allows swapping length and width, but never tips the
	// item onto a different face (its depth always faces up).
	RotationKeepFlat
	// RotationAny allows all six permutations of the three dimensions.
	RotationAny
)

// PackingConstraint is an optional predicate attached to an Item. It is
// evaluated against a candidate placement before that placement is ranked;
// orientations for which it returns false are discarded. alreadyPacked is
// the set of items placed in the box so far.
type PackingConstraint func(alreadyPacked []PackedItem, x, y, z int) bool

// Item is an immutable thing to be packed: three positive dimensions in
// millimetres, a non-negative weight, a rotation policy, and an optional
// placement constraint.
type Item struct {
	ID         uuid.UUID
	Name       string
	Length     int
	Width      int
	Depth      int
	Weight     int
	Rotation   RotationPolicy
	Constraint PackingConstraint
}

// NewItem builds an Item with a fresh identity. Dimensions and weight are
// validated by the Packer at entry, not here (Item is a plain value type).
func NewItem(name string, length, width, depth, weight int, rotation RotationPolicy) *Item {
	return &Item{
		ID:       uuid.New(),
		Name:     name,
		Length:   length,
		Width:    width,
		Depth:    depth,
		Weight:   weight,
		Rotation: rotation,
	}
}

// WithConstraint returns a copy of the item carrying the given placement
// predicate. Items are otherwise immutable.
func (i *Item) WithConstraint(c PackingConstraint) *Item {
	clone := *i
	clone.Constraint = c
	return &clone
}

// Volume returns the item's length*width*depth.
func (i *Item) Volume() int64 {
	return int64(i.Length) * int64(i.Width) * int64(i.Depth)
}

func (i *Item) validate() error {
	if i.Length <= 0 || i.Width <= 0 || i.Depth <= 0 {
		return invalidInput("item dimensions must be positive")
	}
	if i.Weight < 0 {
		return invalidInput("item weight cannot be negative")
	}
	return nil
}

// compareItems implements the canonical ordering from the data model:
// volume DESC, then weight DESC, then a stable identifier.
func compareItems(a, b *Item) int {
	if av, bv := a.Volume(), b.Volume(); av != bv {
		if av > bv {
			return -1
		}
		return 1
	}
	if a.Weight != b.Weight {
		if a.Weight > b.Weight {
			return -1
		}
		return 1
	}
	return compareUUID(a.ID, b.ID)
}

func compareUUID(a, b uuid.UUID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ItemList is a slice of Items that knows how to sort itself into canonical
// packing order.
type ItemList []*Item

// SortCanonical sorts the list in place by the canonical key: volume DESC,
// weight DESC, stable id.
func (l ItemList) SortCanonical() {
	sort.SliceStable(l, func(i, j int) bool {
		return compareItems(l[i], l[j]) < 0
	})
}

// Clone returns a shallow copy of the slice (items themselves are
// immutable, so sharing pointers across clones is safe).
func (l ItemList) Clone() ItemList {
	out := make(ItemList, len(l))
	copy(out, l)
	return out
}

// TotalWeight sums the weight of every item in the list.
func (l ItemList) TotalWeight() int {
	total := 0
	for _, it := range l {
		total += it.Weight
	}
	return total
}

// HasConstraint reports whether any item in the list carries a
// packingConstraint. VolumePacker uses this to skip layer stabilisation
// for the whole box, per the data model's constrained-item rule.
func (l ItemList) HasConstraint() bool {
	for _, it := range l {
		if it.Constraint != nil {
			return true
		}
	}
	return false
}
