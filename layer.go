package cratepack

// PackedItem is an OrientatedItem placed at a position within a box's
// inner volume, relative to the box's own frame.
type PackedItem struct {
	Orientation OrientatedItem
	X, Y, Z     int
}

// Item returns the underlying Item of a packed placement.
func (p PackedItem) Item() *Item { return p.Orientation.Item }

func (p PackedItem) maxX() int { return p.X + p.Orientation.Width }
func (p PackedItem) maxY() int { return p.Y + p.Orientation.Length }
func (p PackedItem) maxZ() int { return p.Z + p.Orientation.Depth }

// overlaps reports whether two packed items' axis-aligned bounding
// volumes intersect.
func (p PackedItem) overlaps(other PackedItem) bool {
	if p.X >= other.maxX() || other.X >= p.maxX() {
		return false
	}
	if p.Y >= other.maxY() || other.Y >= p.maxY() {
		return false
	}
	if p.Z >= other.maxZ() || other.Z >= p.maxZ() {
		return false
	}
	return true
}

// PackedLayer is an ordered run of PackedItems sharing the same z-range: a
// single start depth and a single layer depth, filled row by row in x-y.
type PackedLayer struct {
	StartDepth int
	Depth      int
	Items      []PackedItem
}

// Footprint returns the layer's minimum x-y bounding rectangle area, used
// by LayerStabiliser to order layers bottom-to-top.
func (l PackedLayer) Footprint() int64 {
	if len(l.Items) == 0 {
		return 0
	}
	maxX, maxY := 0, 0
	for _, it := range l.Items {
		if it.maxX() > maxX {
			maxX = it.maxX()
		}
		if it.maxY() > maxY {
			maxY = it.maxY()
		}
	}
	return int64(maxX) * int64(maxY)
}

// LayerPacker fills one horizontal layer of a box: it maintains a cursor
// and a running row height, consuming items strictly from the front of the
// queue until none fits in the current row, a fresh row still doesn't fit,
// or the layer's length is exhausted.
type LayerPacker struct {
	Factory *OrientatedItemFactory
	Log     LogSink
}

// NewLayerPacker builds a LayerPacker around the given orientation
// factory. A nil sink is replaced with a no-op one.
func NewLayerPacker(factory *OrientatedItemFactory, log LogSink) *LayerPacker {
	return &LayerPacker{Factory: factory, Log: sinkOrNop(log)}
}

// Pack fills one layer starting at z0. targetDepth of 0 means the layer's
// depth is still unknown (depthLeft is computed as boxDepth-z0) and the
// first item placed freezes the returned layer's Depth; a non-zero
// targetDepth is used directly as depthLeft for every item in the layer.
// alreadyPacked is passed through to each item's packingConstraint (if
// any) as prior placement context; it is not mutated.
//
// weightBudget, if non-nil, is the box's remaining payload allowance; it
// is decremented as items commit and treated exactly like a dimension that
// ran out (an item that would exceed it is simply reported as not
// fitting, which drives the same row-advance/layer-complete logic as a
// dimensional miss). A nil budget means no weight limit is enforced.
//
// The second return value is non-nil when the layer ended because the
// front item of a fresh row fit every box dimension but its
// packingConstraint rejected every orientation; callers use this to
// surface a ConstraintViolation instead of treating the miss as an
// ordinary dimensional exhaustion.
func (lp *LayerPacker) Pack(queue *itemQueue, alreadyPacked []PackedItem, z0, boxWidth, boxLength, boxDepth, targetDepth int, weightBudget *int) (PackedLayer, *Item) {
	x, y, rowLength := 0, 0, 0
	depth := targetDepth

	var placed []PackedItem
	context := append([]PackedItem(nil), alreadyPacked...)

	for {
		item := queue.peek(0)
		if item == nil {
			break
		}

		depthLeft := depth
		if depthLeft == 0 {
			depthLeft = boxDepth - z0
		}
		widthLeft := boxWidth - x
		lengthLeft := boxLength - y
		hint := queue.peek(1)

		var orient OrientatedItem
		var ok, constraintBlocked bool
		if weightBudget != nil && item.Weight > *weightBudget {
			lp.Log.Debug("item exceeds remaining weight budget", "item", item.Name, "budget", *weightBudget)
		} else {
			orient, ok, constraintBlocked = lp.Factory.BestFit(item, widthLeft, lengthLeft, depthLeft, x, y, z0, context, hint)
		}
		if ok {
			pi := PackedItem{Orientation: orient, X: x, Y: y, Z: z0}
			placed = append(placed, pi)
			context = append(context, pi)
			queue.pop()
			if weightBudget != nil {
				*weightBudget -= item.Weight
			}

			x += orient.Width
			if orient.Length > rowLength {
				rowLength = orient.Length
			}
			if depth == 0 {
				depth = orient.Depth
			}
			continue
		}

		// Nothing fits at the current cursor. If the current row is still
		// empty, a fresh row will not help either (the layer is done) and,
		// since x=0 at the start of a row is the most favourable cursor
		// this layer offers the item, a constraint rejection here is worth
		// reporting back to the caller.
		if rowLength == 0 {
			lp.Log.Debug("layer complete: item does not fit a fresh row", "item", item.Name, "z0", z0)
			var blocked *Item
			if constraintBlocked {
				blocked = item
			}
			return PackedLayer{StartDepth: z0, Depth: depth, Items: placed}, blocked
		}

		newY := y + rowLength
		if newY >= boxLength {
			lp.Log.Debug("layer complete: new row would overflow layer length", "z0", z0)
			return PackedLayer{StartDepth: z0, Depth: depth, Items: placed}, nil
		}
		x, y, rowLength = 0, newY, 0
	}

	return PackedLayer{StartDepth: z0, Depth: depth, Items: placed}, nil
}
