package cratepack

import "testing"

func TestPackedBoxListAggregates(t *testing.T) {
	boxA := NewBox("a", 110, 110, 110, 100, 100, 100, 10, 10000)
	boxB := NewBox("b", 110, 110, 110, 100, 100, 100, 20, 10000)

	list := &PackedBoxList{Boxes: []*PackedBox{
		{Box: boxA, Layers: []PackedLayer{{Items: []PackedItem{
			{Orientation: OrientatedItem{Item: NewItem("x", 10, 10, 10, 100, RotationNever)}},
		}}}},
		{Box: boxB, Layers: []PackedLayer{{Items: []PackedItem{
			{Orientation: OrientatedItem{Item: NewItem("y", 10, 10, 10, 300, RotationNever)}},
		}}}},
	}}

	if got, want := list.Count(), 2; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
	if got, want := list.TotalWeight(), 10+100+20+300; got != want {
		t.Errorf("TotalWeight() = %d, want %d", got, want)
	}
	if got, want := list.MeanItemWeight(), 200.0; got != want {
		t.Errorf("MeanItemWeight() = %f, want %f", got, want)
	}
}

func TestWeightRedistributorReducesVarianceWithoutChangingBoxCount(t *testing.T) {
	box := NewBox("carton", 110, 110, 110, 100, 100, 100, 10, 500)
	packer := NewPacker(nil)

	items := []*Item{
		NewItem("heavy1", 50, 50, 50, 400, RotationNever),
		NewItem("light1", 50, 50, 50, 10, RotationNever),
		NewItem("heavy2", 50, 50, 50, 400, RotationNever),
		NewItem("light2", 50, 50, 50, 10, RotationNever),
	}

	plain, err := packer.Pack(items, []*Box{box}, Quantities{box.ID: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balanced, err := packer.PackWithWeightBalance(items, []*Box{box}, Quantities{box.ID: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if balanced.Count() > plain.Count() {
		t.Fatalf("weight balancing must not increase box count: plain=%d balanced=%d", plain.Count(), balanced.Count())
	}
	if balanced.WeightVariance() >= plain.WeightVariance() {
		t.Errorf("expected weight balancing to reduce variance: plain=%f balanced=%f", plain.WeightVariance(), balanced.WeightVariance())
	}
}

func TestWeightRedistributorPreservesItemSet(t *testing.T) {
	box := NewBox("carton", 110, 110, 110, 100, 100, 100, 10, 500)
	packer := NewPacker(nil)

	items := []*Item{
		NewItem("a", 40, 40, 40, 300, RotationNever),
		NewItem("b", 40, 40, 40, 50, RotationNever),
		NewItem("c", 40, 40, 40, 300, RotationNever),
		NewItem("d", 40, 40, 40, 50, RotationNever),
	}

	balanced, err := packer.PackWithWeightBalance(items, []*Box{box}, Quantities{box.ID: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]bool{}
	for _, b := range balanced.Boxes {
		for _, it := range b.Items() {
			seen[it.Item().Name] = true
		}
	}
	for _, it := range items {
		if !seen[it.Name] {
			t.Errorf("expected item %q to still be present after redistribution", it.Name)
		}
	}
}
