package cratepack

import (
	"sort"

	"github.com/google/uuid"
)

// WeightRedistributor post-processes a valid packing to reduce the
// variance of total weight across boxes, without changing the packed item
// set or increasing the box count. It cannot fail: a local re-pack that
// doesn't work out simply aborts that one candidate swap.
type WeightRedistributor struct {
	packer *Packer
	Log    LogSink
}

// NewWeightRedistributor builds a redistributor that calls back into
// packer for local re-packs.
func NewWeightRedistributor(packer *Packer, log LogSink) *WeightRedistributor {
	return &WeightRedistributor{packer: packer, Log: sinkOrNop(log)}
}

// Run repeatedly looks for a pairwise item migration between a heavier and
// a lighter box that strictly reduces weight variance, applying swaps
// until a full pass finds none. boxes is the full catalog (a local
// re-pack may choose a different box type than the one it started from);
// quantities is mutated in place to track the net effect of every
// accepted swap.
func (r *WeightRedistributor) Run(list *PackedBoxList, boxes BoxList, quantities Quantities) *PackedBoxList {
	meanItemWeight := list.MeanItemWeight()

	for {
		if !r.pass(list, boxes, quantities, meanItemWeight) {
			return list
		}
	}
}

// pass performs one full scan over box pairs and applies at most one swap,
// returning true if a swap was made (the caller restarts from scratch) or
// false if nothing in this pass improved variance.
func (r *WeightRedistributor) pass(list *PackedBoxList, boxes BoxList, quantities Quantities, meanItemWeight float64) bool {
	sort.SliceStable(list.Boxes, func(i, j int) bool {
		return list.Boxes[i].TotalWeight() > list.Boxes[j].TotalWeight()
	})

	for i := 0; i < len(list.Boxes); i++ {
		for j := i + 1; j < len(list.Boxes); j++ {
			heavy, light := list.Boxes[i], list.Boxes[j]
			if heavy.TotalWeight() <= light.TotalWeight() {
				continue
			}

			for _, moving := range heavy.Items() {
				if float64(moving.Item().Weight)+float64(light.ItemWeight()) > meanItemWeight {
					continue
				}

				lightItems := append(toItemList(light.Items()), moving.Item())
				resultLight, ok := r.localRepack(lightItems, light.Box.ID, boxes, quantities)
				if !ok {
					continue
				}

				if len(heavy.Items()) == 1 {
					r.Log.Debug("redistribution eliminates a box", "box", heavy.Box.Name)
					quantities[heavy.Box.ID]++
					quantities[light.Box.ID]++
					quantities[resultLight.Box.ID]--
					list.Boxes = replaceEliminating(list.Boxes, i, j, resultLight)
					return true
				}

				heavyItems := toItemList(removeOne(heavy.Items(), moving))
				resultHeavy, okHeavy := r.localRepack(heavyItems, heavy.Box.ID, boxes, quantities)
				if !okHeavy {
					continue
				}

				oldVariance := weightVariance(list.Boxes)
				trial := make([]*PackedBox, len(list.Boxes))
				copy(trial, list.Boxes)
				trial[i] = resultHeavy
				trial[j] = resultLight
				newVariance := weightVariance(trial)

				if newVariance < oldVariance {
					quantities[heavy.Box.ID]++
					quantities[light.Box.ID]++
					quantities[resultHeavy.Box.ID]--
					quantities[resultLight.Box.ID]--
					list.Boxes = trial
					return true
				}
			}
		}
	}
	return false
}

// localRepack re-packs a subset with the full box catalog available (the
// result may use a different box type than the one the subset started in).
// The box type currently holding the subset is offered back with an
// unbounded quantity for this trial only, per the documented "sufficiently
// large" semantics for the currently-held type.
func (r *WeightRedistributor) localRepack(items ItemList, currentBoxID uuid.UUID, boxes BoxList, quantities Quantities) (*PackedBox, bool) {
	trialQuantities := quantities.Clone()
	trialQuantities[currentBoxID] = unboundedQuantity

	result, err := r.packer.packLoop(items, boxes, trialQuantities)
	if err != nil || result.Count() != 1 {
		return nil, false
	}
	return result.Boxes[0], true
}

func replaceEliminating(boxes []*PackedBox, heavyIdx, lightIdx int, replacement *PackedBox) []*PackedBox {
	out := make([]*PackedBox, 0, len(boxes)-1)
	for k, b := range boxes {
		switch k {
		case heavyIdx:
			continue
		case lightIdx:
			out = append(out, replacement)
		default:
			out = append(out, b)
		}
	}
	return out
}

// removeOne returns items with the first occurrence of target's underlying
// Item removed, matched by identity.
func removeOne(items []PackedItem, target PackedItem) []PackedItem {
	out := make([]PackedItem, 0, len(items))
	removed := false
	for _, it := range items {
		if !removed && it.Item().ID == target.Item().ID {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out
}
