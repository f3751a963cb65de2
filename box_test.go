package cratepack

import "testing"

func TestBoxInnerVolume(t *testing.T) {
	b := NewBox("carton", 100, 100, 100, 90, 90, 90, 10, 5000)
	if got, want := b.InnerVolume(), int64(729000); got != want {
		t.Errorf("InnerVolume() = %d, want %d", got, want)
	}
}

func TestBoxValidate(t *testing.T) {
	cases := []struct {
		name    string
		box     *Box
		wantErr bool
	}{
		{"valid", NewBox("a", 10, 10, 10, 8, 8, 8, 0, 100), false},
		{"zero outer", NewBox("a", 0, 10, 10, 8, 8, 8, 0, 100), true},
		{"inner exceeds outer", NewBox("a", 10, 10, 10, 12, 8, 8, 0, 100), true},
		{"negative payload", NewBox("a", 10, 10, 10, 8, 8, 8, 0, -1), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.box.validate()
			if (err != nil) != c.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestBoxListSortByInnerVolumeDesc(t *testing.T) {
	small := NewBox("small", 10, 10, 10, 8, 8, 8, 0, 100)
	large := NewBox("large", 100, 100, 100, 90, 90, 90, 0, 100)
	medium := NewBox("medium", 50, 50, 50, 40, 40, 40, 0, 100)

	sorted := BoxList{small, large, medium}.SortByInnerVolumeDesc()
	if sorted[0] != large || sorted[1] != medium || sorted[2] != small {
		t.Fatalf("expected descending inner-volume order, got %q %q %q", sorted[0].Name, sorted[1].Name, sorted[2].Name)
	}
}

func TestBoxListSortByInnerVolumeDescDoesNotMutateInput(t *testing.T) {
	small := NewBox("small", 10, 10, 10, 8, 8, 8, 0, 100)
	large := NewBox("large", 100, 100, 100, 90, 90, 90, 0, 100)
	original := BoxList{small, large}

	_ = original.SortByInnerVolumeDesc()

	if original[0] != small || original[1] != large {
		t.Errorf("expected original slice order to be unchanged")
	}
}

func TestQuantitiesClone(t *testing.T) {
	b := NewBox("a", 10, 10, 10, 8, 8, 8, 0, 100)
	q := Quantities{b.ID: 3}
	clone := q.Clone()
	clone[b.ID] = 99

	if q[b.ID] != 3 {
		t.Errorf("expected original quantities to be unaffected by mutating the clone")
	}
}
