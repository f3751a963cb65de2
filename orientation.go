package cratepack

// OrientatedItem pairs an Item with one of its legal rotations. Width maps
// to the box's x-axis, Length to the y-axis, Depth to the z-axis. The three
// values are always a permutation of the item's own (Length, Width, Depth).
type OrientatedItem struct {
	Item   *Item
	Width  int
	Length int
	Depth  int
}

// Footprint is the orientation's x-y bounding area.
func (o OrientatedItem) Footprint() int64 {
	return int64(o.Width) * int64(o.Length)
}

// orientations enumerates every orientation an item's rotation policy
// allows, deduplicated (a cube under RotationAny would otherwise yield six
// identical triples).
func orientations(item *Item) []OrientatedItem {
	l, w, d := item.Length, item.Width, item.Depth

	var triples [][3]int
	switch item.Rotation {
	case RotationNever:
		triples = [][3]int{{w, l, d}}
	case RotationKeepFlat:
		triples = [][3]int{{w, l, d}, {l, w, d}}
	case RotationAny:
		triples = [][3]int{
			{w, l, d}, {l, w, d},
			{w, d, l}, {d, w, l},
			{l, d, w}, {d, l, w},
		}
	default:
		triples = [][3]int{{w, l, d}}
	}

	seen := make(map[[3]int]bool, len(triples))
	out := make([]OrientatedItem, 0, len(triples))
	for _, t := range triples {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, OrientatedItem{Item: item, Width: t[0], Length: t[1], Depth: t[2]})
	}
	return out
}

// OrientatedItemFactory picks the preferred orientation of an item for a
// given residual cuboid, applying the ranking rules from the spec in
// order: smallest depth surplus, then best footprint match, then whether a
// hint item still fits afterwards, then a stable lexicographic tie-break.
type OrientatedItemFactory struct {
	Log LogSink
}

// NewOrientatedItemFactory builds a factory. A nil sink is replaced with a
// no-op one.
func NewOrientatedItemFactory(log LogSink) *OrientatedItemFactory {
	return &OrientatedItemFactory{Log: sinkOrNop(log)}
}

// BestFit returns the preferred orientation of item that fits within the
// residual cuboid (widthLeft, lengthLeft, depthLeft) at the proposed
// position (x, y, z). ok is false if nothing fits; blocked is true when at
// least one orientation fit dimensionally but the item's packingConstraint
// rejected every one of them, which callers use to tell a constraint
// rejection apart from a plain dimensional miss.
func (f *OrientatedItemFactory) BestFit(item *Item, widthLeft, lengthLeft, depthLeft, x, y, z int, alreadyPacked []PackedItem, hint *Item) (orient OrientatedItem, ok bool, blocked bool) {
	candidates := orientations(item)

	var dimensional []OrientatedItem
	for _, o := range candidates {
		if o.Width > widthLeft || o.Length > lengthLeft || o.Depth > depthLeft {
			continue
		}
		dimensional = append(dimensional, o)
	}

	if len(dimensional) == 0 {
		f.Log.Debug("no orientation fits", "item", item.Name, "widthLeft", widthLeft, "lengthLeft", lengthLeft, "depthLeft", depthLeft)
		return OrientatedItem{}, false, false
	}

	fitting := dimensional
	if item.Constraint != nil {
		fitting = fitting[:0:0]
		for _, o := range dimensional {
			if item.Constraint(alreadyPacked, x, y, z) {
				fitting = append(fitting, o)
			}
		}
	}

	if len(fitting) == 0 {
		f.Log.Debug("packingConstraint rejected every dimensionally-fitting orientation", "item", item.Name, "x", x, "y", y, "z", z)
		return OrientatedItem{}, false, true
	}

	best := fitting[0]
	for _, cand := range fitting[1:] {
		if f.better(cand, best, widthLeft, lengthLeft, depthLeft, hint) {
			best = cand
		}
	}
	return best, true, false
}

// better reports whether cand should be preferred over best, applying the
// ranking rules in order until one of them distinguishes the pair.
func (f *OrientatedItemFactory) better(cand, best OrientatedItem, widthLeft, lengthLeft, depthLeft int, hint *Item) bool {
	candSurplus := depthLeft - cand.Depth
	bestSurplus := depthLeft - best.Depth
	if candSurplus != bestSurplus {
		return candSurplus < bestSurplus
	}

	candWaste := int64(widthLeft)*int64(lengthLeft) - cand.Footprint()
	bestWaste := int64(widthLeft)*int64(lengthLeft) - best.Footprint()
	if candWaste != bestWaste {
		return candWaste < bestWaste
	}

	if hint != nil {
		candHint := f.hintStillFits(cand, widthLeft, lengthLeft, depthLeft, hint)
		bestHint := f.hintStillFits(best, widthLeft, lengthLeft, depthLeft, hint)
		if candHint != bestHint {
			return candHint
		}
	}

	return lexLess(cand, best)
}

// hintStillFits simulates placing o at the current cursor and checks
// whether the hint item would still fit somewhere in what remains of the
// row, in any of its own legal orientations.
func (f *OrientatedItemFactory) hintStillFits(o OrientatedItem, widthLeft, lengthLeft, depthLeft int, hint *Item) bool {
	remainingWidth := widthLeft - o.Width
	if remainingWidth <= 0 {
		return false
	}
	for _, h := range orientations(hint) {
		if h.Width <= remainingWidth && h.Length <= lengthLeft && h.Depth <= depthLeft {
			return true
		}
	}
	return false
}

// lexLess is the stable tie-break: lexicographic on the dimension triple.
func lexLess(a, b OrientatedItem) bool {
	if a.Width != b.Width {
		return a.Width < b.Width
	}
	if a.Length != b.Length {
		return a.Length < b.Length
	}
	return a.Depth < b.Depth
}
