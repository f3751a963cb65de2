package cratepack

import "testing"

func TestItemVolume(t *testing.T) {
	it := NewItem("box", 10, 20, 30, 5, RotationNever)
	if got, want := it.Volume(), int64(6000); got != want {
		t.Errorf("Volume() = %d, want %d", got, want)
	}
}

func TestItemValidate(t *testing.T) {
	cases := []struct {
		name    string
		item    *Item
		wantErr bool
	}{
		{"valid", NewItem("a", 1, 1, 1, 0, RotationNever), false},
		{"zero length", NewItem("a", 0, 1, 1, 0, RotationNever), true},
		{"negative width", NewItem("a", 1, -1, 1, 0, RotationNever), true},
		{"negative weight", NewItem("a", 1, 1, 1, -1, RotationNever), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.item.validate()
			if (err != nil) != c.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestItemSortCanonical(t *testing.T) {
	small := NewItem("small", 10, 10, 10, 5, RotationNever)
	big := NewItem("big", 20, 20, 20, 5, RotationNever)
	heavy := NewItem("heavy", 10, 10, 10, 50, RotationNever)

	list := ItemList{small, heavy, big}
	list.SortCanonical()

	if list[0] != big {
		t.Fatalf("expected biggest volume first, got %q", list[0].Name)
	}
	if list[1] != heavy || list[2] != small {
		t.Fatalf("expected heavier of equal-volume items first: got order %q %q %q", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestItemSortCanonicalStableOnTies(t *testing.T) {
	a := NewItem("a", 10, 10, 10, 5, RotationNever)
	b := NewItem("b", 10, 10, 10, 5, RotationNever)

	list := ItemList{a, b}
	list.SortCanonical()

	// a.ID and b.ID are random UUIDs; the ordering must be deterministic
	// and consistent with compareUUID, not merely "some" stable order.
	want := a
	if compareUUID(b.ID, a.ID) < 0 {
		want = b
	}
	if list[0] != want {
		t.Errorf("expected deterministic uuid tiebreak order")
	}
}

func TestWithConstraintDoesNotMutateOriginal(t *testing.T) {
	it := NewItem("a", 1, 1, 1, 0, RotationNever)
	constrained := it.WithConstraint(func(_ []PackedItem, _, _, _ int) bool { return true })

	if it.Constraint != nil {
		t.Errorf("expected original item's constraint to remain nil")
	}
	if constrained.Constraint == nil {
		t.Errorf("expected cloned item to carry the constraint")
	}
	if constrained.ID != it.ID {
		t.Errorf("expected WithConstraint to preserve identity")
	}
}

func TestItemListHasConstraint(t *testing.T) {
	plain := ItemList{NewItem("a", 1, 1, 1, 0, RotationNever)}
	if plain.HasConstraint() {
		t.Errorf("expected no constraint")
	}

	constrained := NewItem("b", 1, 1, 1, 0, RotationNever).WithConstraint(func(_ []PackedItem, _, _, _ int) bool { return true })
	withConstraint := ItemList{plain[0], constrained}
	if !withConstraint.HasConstraint() {
		t.Errorf("expected constraint to be detected")
	}
}

func TestItemListTotalWeight(t *testing.T) {
	list := ItemList{
		NewItem("a", 1, 1, 1, 10, RotationNever),
		NewItem("b", 1, 1, 1, 20, RotationNever),
	}
	if got, want := list.TotalWeight(), 30; got != want {
		t.Errorf("TotalWeight() = %d, want %d", got, want)
	}
}
