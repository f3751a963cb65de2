package cratepack

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// PackedBoxList is the result of a packing run: a multiset of PackedBox.
type PackedBoxList struct {
	Boxes []*PackedBox
}

// Count returns the number of boxes in the list.
func (l *PackedBoxList) Count() int { return len(l.Boxes) }

// TotalWeight sums every box's total weight (empty weight + item weight).
func (l *PackedBoxList) TotalWeight() int {
	total := 0
	for _, b := range l.Boxes {
		total += b.TotalWeight()
	}
	return total
}

// MeanItemWeight is total item weight (excluding box tare) divided by the
// number of boxes (the target payload per box used by WeightRedistributor).
func (l *PackedBoxList) MeanItemWeight() float64 {
	if len(l.Boxes) == 0 {
		return 0
	}
	total := 0
	for _, b := range l.Boxes {
		total += b.ItemWeight()
	}
	return float64(total) / float64(len(l.Boxes))
}

// WeightVariance is the population variance of total per-box weight.
func (l *PackedBoxList) WeightVariance() float64 {
	return weightVariance(l.Boxes)
}

func weightVariance(boxes []*PackedBox) float64 {
	n := len(boxes)
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, b := range boxes {
		mean += float64(b.TotalWeight())
	}
	mean /= float64(n)

	variance := 0.0
	for _, b := range boxes {
		d := float64(b.TotalWeight()) - mean
		variance += d * d
	}
	return variance / float64(n)
}

// Packer orchestrates the multi-box packing loop described in the spec:
// it iterates candidate box types in decreasing inner-volume order,
// delegates placement to VolumePacker, and tries to shrink the chosen box
// down to the smallest box type that still holds the same items.
type Packer struct {
	VolumePacker *VolumePacker
	Log          LogSink
}

// NewPacker builds a ready-to-use Packer. A nil sink is replaced with a
// no-op one.
func NewPacker(log LogSink) *Packer {
	log = sinkOrNop(log)
	factory := NewOrientatedItemFactory(log)
	layerPacker := NewLayerPacker(factory, log)
	volumePacker := NewVolumePacker(layerPacker, log)
	return &Packer{VolumePacker: volumePacker, Log: log}
}

// Pack performs pure volume packing: it minimises the number of boxes, with
// no weight-balancing pass afterward.
func (p *Packer) Pack(items []*Item, boxes []*Box, quantities Quantities) (*PackedBoxList, error) {
	runID := ulid.Make()
	p.Log.Info("pack starting", "run", runID.String(), "items", len(items), "box_types", len(boxes))

	if err := validateEntry(items, boxes, quantities); err != nil {
		return nil, err
	}
	return p.packLoop(ItemList(items), BoxList(boxes), quantities.Clone())
}

// PackWithWeightBalance performs volume packing, then runs
// WeightRedistributor over the result to reduce weight variance across
// boxes without increasing the box count.
func (p *Packer) PackWithWeightBalance(items []*Item, boxes []*Box, quantities Quantities) (*PackedBoxList, error) {
	runID := ulid.Make()
	p.Log.Info("pack (weight-balanced) starting", "run", runID.String(), "items", len(items), "box_types", len(boxes))

	if err := validateEntry(items, boxes, quantities); err != nil {
		return nil, err
	}
	working := quantities.Clone()
	result, err := p.packLoop(ItemList(items), BoxList(boxes), working)
	if err != nil {
		return nil, err
	}

	redistributor := NewWeightRedistributor(p, p.Log)
	return redistributor.Run(result, BoxList(boxes), working), nil
}

func validateEntry(items []*Item, boxes []*Box, quantities Quantities) error {
	if len(items) == 0 {
		return invalidInput("no items to pack")
	}
	if len(boxes) == 0 {
		return invalidInput("no box types supplied")
	}
	for _, it := range items {
		if err := it.validate(); err != nil {
			return err
		}
	}
	for _, b := range boxes {
		if err := b.validate(); err != nil {
			return err
		}
	}
	for _, it := range items {
		best := 0
		for _, b := range boxes {
			if b.MaxPayload > best {
				best = b.MaxPayload
			}
		}
		if it.Weight > best {
			return &PackError{Kind: KindInvalidInput, Item: it, Reason: "item weight exceeds every box's max payload"}
		}
	}
	return checkItemsFitSomeBox(items, boxes)
}

// checkItemsFitSomeBox is the pre-loop ItemTooLarge check: every item must
// have at least one legal orientation that fits inside at least one box
// type in stock, quantity aside.
func checkItemsFitSomeBox(items []*Item, boxes []*Box) error {
	for _, it := range items {
		if !fitsAnyBox(it, boxes) {
			return itemTooLarge(it)
		}
	}
	return nil
}

func fitsAnyBox(item *Item, boxes []*Box) bool {
	for _, b := range boxes {
		for _, o := range orientations(item) {
			if o.Width <= b.InnerWidth && o.Length <= b.InnerLength && o.Depth <= b.InnerDepth {
				return true
			}
			// A box rotation swaps inner width and length.
			if o.Width <= b.InnerLength && o.Length <= b.InnerWidth && o.Depth <= b.InnerDepth {
				return true
			}
		}
	}
	return false
}

// packLoop is the outer multi-box loop, shared by Pack and the local
// re-pack WeightRedistributor uses: while items remain, pick the best
// candidate box type, try to shrink it, commit, and repeat.
func (p *Packer) packLoop(items ItemList, boxes BoxList, quantities Quantities) (*PackedBoxList, error) {
	remaining := items.Clone()
	remaining.SortCanonical()

	result := &PackedBoxList{}

	for len(remaining) > 0 {
		candidates := candidateBoxes(boxes, quantities, remaining)
		if len(candidates) == 0 {
			return nil, insufficientBoxes(len(remaining))
		}

		chosenIdx, chosenPacked, blocked := p.chooseBox(candidates, remaining)
		if chosenPacked == nil || chosenPacked.ItemCount() == 0 {
			if blocked != nil {
				return nil, constraintViolation(blocked)
			}
			return nil, insufficientBoxes(len(remaining))
		}

		packedItems := chosenPacked.Items()
		if chosenPacked.ItemCount() < len(remaining) && chosenIdx < len(candidates)-1 {
			if shrunk := p.tryShrink(candidates[chosenIdx+1:], quantities, toItemList(packedItems)); shrunk != nil {
				chosenPacked = shrunk
			}
		}

		quantities[chosenPacked.Box.ID]--
		result.Boxes = append(result.Boxes, chosenPacked)
		remaining = removeItems(remaining, chosenPacked.Items())

		p.Log.Debug("committed box", "box", chosenPacked.Box.Name, "items", chosenPacked.ItemCount(), "remaining", len(remaining))
	}

	return result, nil
}

// candidateBoxes returns box types sorted by inner volume DESC, filtered
// to those with remaining quantity and a max payload that can at least
// hold the lightest remaining item.
func candidateBoxes(boxes BoxList, quantities Quantities, remaining ItemList) BoxList {
	lightest := lightestWeight(remaining)
	sorted := boxes.SortByInnerVolumeDesc()

	out := make(BoxList, 0, len(sorted))
	for _, b := range sorted {
		if quantities[b.ID] <= 0 {
			continue
		}
		if b.MaxPayload < lightest {
			continue
		}
		out = append(out, b)
	}
	return out
}

func lightestWeight(items ItemList) int {
	if len(items) == 0 {
		return 0
	}
	lightest := items[0].Weight
	for _, it := range items[1:] {
		if it.Weight < lightest {
			lightest = it.Weight
		}
	}
	return lightest
}

// chooseBox trial-packs remaining into every candidate and picks the one
// that packs the most items; ties are broken by highest volume
// utilisation, then smallest empty weight, then the earliest candidate in
// the (inner-volume-descending) order (the first strict improvement wins
// and nothing further is visited on exact ties). The returned *Item is
// non-nil when at least one candidate's trial pack stopped short because a
// packingConstraint rejected an item's only dimensionally-fitting
// placement, for the caller to surface as a ConstraintViolation if no
// candidate ultimately packs anything.
func (p *Packer) chooseBox(candidates BoxList, remaining ItemList) (int, *PackedBox, *Item) {
	var bestIdx int
	var best *PackedBox
	var blocked *Item

	for i, box := range candidates {
		trial, trialBlocked := p.VolumePacker.Pack(box, remaining, false)
		if best == nil || better(trial, best) {
			best = trial
			bestIdx = i
		}
		if trialBlocked != nil {
			blocked = trialBlocked
		}
	}
	return bestIdx, best, blocked
}

func better(cand, best *PackedBox) bool {
	if cand.ItemCount() != best.ItemCount() {
		return cand.ItemCount() > best.ItemCount()
	}
	if u1, u2 := cand.VolumeUtilisation(), best.VolumeUtilisation(); u1 != u2 {
		return u1 > u2
	}
	return cand.Box.EmptyWeight < best.Box.EmptyWeight
}

// tryShrink looks for the smallest-volume box among the given (smaller)
// candidates that still fits exactly the same item set in one box. The
// trial pack runs full (rotated-frame attempt plus stabilisation): a
// committed box must come out of the same pass any other candidate would,
// not a cut-down approximation.
func (p *Packer) tryShrink(smaller BoxList, quantities Quantities, items ItemList) *PackedBox {
	// smaller is already sorted by inner volume DESC; walk from the back
	// (smallest) forward so the first hit is the smallest fitting box.
	for i := len(smaller) - 1; i >= 0; i-- {
		box := smaller[i]
		if quantities[box.ID] <= 0 {
			continue
		}
		trial, _ := p.VolumePacker.Pack(box, items, false)
		if trial.ItemCount() == len(items) {
			return trial
		}
	}
	return nil
}

func toItemList(packed []PackedItem) ItemList {
	out := make(ItemList, len(packed))
	for i, p := range packed {
		out[i] = p.Item()
	}
	return out
}

// removeItems returns remaining minus every item present in packed,
// matched by identity.
func removeItems(remaining ItemList, packed []PackedItem) ItemList {
	removedIDs := make(map[uuid.UUID]bool, len(packed))
	for _, p := range packed {
		removedIDs[p.Item().ID] = true
	}
	out := remaining[:0:0]
	for _, it := range remaining {
		if removedIDs[it.ID] {
			delete(removedIDs, it.ID) // only drop one instance per identity
			continue
		}
		out = append(out, it)
	}
	return out
}
