package cratepack

import "sort"

// StabiliseLayers reorders a stack of complete layers so that layers with
// a larger x-y footprint sit at smaller z, for physical stability. Item
// positions within a layer are untouched; only each layer's StartDepth is
// recomputed to reflect its new place in the stack.
//
// Callers are expected to have already checked eligibility: stabilisation
// is skipped entirely when singlePass is true or when any item in the box
// carries a packingConstraint, since a constraint may reason about
// z-order.
func StabiliseLayers(layers []PackedLayer) []PackedLayer {
	ordered := make([]PackedLayer, len(layers))
	copy(ordered, layers)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Footprint() > ordered[j].Footprint()
	})

	z := 0
	for i := range ordered {
		delta := z - ordered[i].StartDepth
		if delta != 0 {
			ordered[i].Items = shiftDepth(ordered[i].Items, delta)
		}
		ordered[i].StartDepth = z
		z += ordered[i].Depth
	}
	return ordered
}

func shiftDepth(items []PackedItem, delta int) []PackedItem {
	out := make([]PackedItem, len(items))
	for i, it := range items {
		it.Z += delta
		out[i] = it
	}
	return out
}
