package cratepack

// PackedBox is a Box plus the flat list of items placed inside it,
// organised as a stack of layers.
type PackedBox struct {
	Box    *Box
	Layers []PackedLayer
}

// Items flattens the box's layers into a single ordered list.
func (b *PackedBox) Items() []PackedItem {
	var out []PackedItem
	for _, layer := range b.Layers {
		out = append(out, layer.Items...)
	}
	return out
}

// ItemWeight sums the weight of every packed item in the box.
func (b *PackedBox) ItemWeight() int {
	total := 0
	for _, layer := range b.Layers {
		for _, it := range layer.Items {
			total += it.Item().Weight
		}
	}
	return total
}

// TotalWeight is the box's empty weight plus its item weight.
func (b *PackedBox) TotalWeight() int {
	return b.Box.EmptyWeight + b.ItemWeight()
}

// VolumeUtilisation is the packed item volume divided by the box's inner
// volume.
func (b *PackedBox) VolumeUtilisation() float64 {
	innerVol := b.Box.InnerVolume()
	if innerVol == 0 {
		return 0
	}
	var packedVol int64
	for _, layer := range b.Layers {
		for _, it := range layer.Items {
			packedVol += it.Item().Volume()
		}
	}
	return float64(packedVol) / float64(innerVol)
}

// ItemCount returns the number of items packed into the box.
func (b *PackedBox) ItemCount() int {
	n := 0
	for _, layer := range b.Layers {
		n += len(layer.Items)
	}
	return n
}

// VolumePacker packs a fixed set of items into a single fixed Box, trying
// both the box's natural frame and its rotated frame (inner width and
// inner length swapped) unless singlePass is set, and keeping whichever
// rotation does better.
type VolumePacker struct {
	LayerPacker *LayerPacker
	Log         LogSink
}

// NewVolumePacker builds a VolumePacker around the given LayerPacker. A nil
// sink is replaced with a no-op one.
func NewVolumePacker(layerPacker *LayerPacker, log LogSink) *VolumePacker {
	return &VolumePacker{LayerPacker: layerPacker, Log: sinkOrNop(log)}
}

// Pack packs items into box, returning the resulting PackedBox. singlePass
// disables stabilisation, the two-pass depth probe, and the second
// (rotated) attempt, so an item that only fits the rotated frame is left
// unpacked; Packer and WeightRedistributor always call with singlePass
// false. The second return value is
// non-nil when packing stopped short because an item's packingConstraint
// rejected its only dimensionally-fitting placement.
func (vp *VolumePacker) Pack(box *Box, items ItemList, singlePass bool) (*PackedBox, *Item) {
	natural, naturalBlocked := vp.packRotation(box, items, box.InnerWidth, box.InnerLength, false, singlePass)
	if natural.ItemCount() == len(items) {
		return natural, nil
	}

	if singlePass || box.InnerWidth == box.InnerLength {
		return natural, naturalBlocked
	}

	rotated, rotatedBlocked := vp.packRotation(box, items, box.InnerLength, box.InnerWidth, true, singlePass)
	if rotated.ItemCount() == len(items) {
		return rotated, nil
	}

	if rotated.VolumeUtilisation() > natural.VolumeUtilisation() {
		return rotated, rotatedBlocked
	}
	return natural, naturalBlocked
}

// packRotation runs the layer-stacking loop for one box rotation. When
// swapped is true, innerW/innerL have already been exchanged by the
// caller, and every placed item's x/y (and width/length) are swapped back
// before returning so positions are always expressed in the box's natural
// frame. The returned *Item is non-nil when the loop stopped because a
// packingConstraint rejected the front item's only dimensionally-fitting
// placement, rather than because nothing fit.
func (vp *VolumePacker) packRotation(box *Box, items ItemList, innerWidth, innerLength int, swapped, singlePass bool) (*PackedBox, *Item) {
	queue := newItemQueue(items)
	constrained := items.HasConstraint()

	var layers []PackedLayer
	var blocked *Item
	z := 0
	weightBudget := box.MaxPayload
	for queue.len() > 0 && z < box.InnerDepth {
		context := flattenLayers(layers)

		var depth int
		var layer PackedLayer
		var layerBlocked *Item
		if singlePass {
			wb := weightBudget
			layer, layerBlocked = vp.LayerPacker.Pack(queue, context, z, innerWidth, innerLength, box.InnerDepth, 0, &wb)
			weightBudget = wb
		} else {
			probeQueue := queue.clone()
			probeBudget := weightBudget
			probe, probeBlocked := vp.LayerPacker.Pack(probeQueue, context, z, innerWidth, innerLength, box.InnerDepth, 0, &probeBudget)
			if len(probe.Items) == 0 {
				blocked = probeBlocked
				break
			}
			depth = probe.Depth
			wb := weightBudget
			layer, _ = vp.LayerPacker.Pack(queue, context, z, innerWidth, innerLength, box.InnerDepth, depth, &wb)
			weightBudget = wb
		}

		if len(layer.Items) == 0 {
			blocked = layerBlocked
			break
		}
		blocked = nil
		layers = append(layers, layer)
		z += layer.Depth
	}

	if swapped {
		layers = swapLayers(layers)
	}

	if !singlePass && !constrained && len(layers) > 1 {
		layers = StabiliseLayers(layers)
	}

	return &PackedBox{Box: box, Layers: layers}, blocked
}

func flattenLayers(layers []PackedLayer) []PackedItem {
	var out []PackedItem
	for _, l := range layers {
		out = append(out, l.Items...)
	}
	return out
}

// swapLayers exchanges x/y and width/length on every item, restoring the
// box's natural frame after a pack run that used inner width and inner
// length swapped.
func swapLayers(layers []PackedLayer) []PackedLayer {
	out := make([]PackedLayer, len(layers))
	for i, l := range layers {
		items := make([]PackedItem, len(l.Items))
		for j, it := range l.Items {
			it.X, it.Y = it.Y, it.X
			it.Orientation.Width, it.Orientation.Length = it.Orientation.Length, it.Orientation.Width
			items[j] = it
		}
		l.Items = items
		out[i] = l
	}
	return out
}
