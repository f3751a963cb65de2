// Package catalog loads the JSON-backed item/box catalog that feeds
// cratepack.Packer, and is the quantity-bookkeeping container spec.md
// keeps deliberately out of the packing core. It follows the same
// read-file/unmarshal/validate shape the example pack uses for its own
// domain configuration.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/oriongate/cratepack"
)

// ItemSpec is the on-disk shape of one item entry.
type ItemSpec struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Width    int    `json:"width"`
	Depth    int    `json:"depth"`
	Weight   int    `json:"weight"`
	Rotation string `json:"rotation"` // "never", "keep-flat", "any"
}

// BoxSpec is the on-disk shape of one box type entry.
type BoxSpec struct {
	Name        string `json:"name"`
	OuterLength int    `json:"outer_length"`
	OuterWidth  int    `json:"outer_width"`
	OuterDepth  int    `json:"outer_depth"`
	InnerLength int    `json:"inner_length"`
	InnerWidth  int    `json:"inner_width"`
	InnerDepth  int    `json:"inner_depth"`
	EmptyWeight int    `json:"empty_weight"`
	MaxPayload  int    `json:"max_payload"`
	Quantity    int    `json:"quantity"`
}

// document is the on-disk shape of a whole catalog file.
type document struct {
	Items []ItemSpec `json:"items"`
	Boxes []BoxSpec  `json:"boxes"`
}

// Catalog is a ready-to-pack (items, boxes, quantities) triple.
type Catalog struct {
	Items      []*cratepack.Item
	Boxes      []*cratepack.Box
	Quantities cratepack.Quantities
}

// Load reads and validates a catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	return build(doc)
}

func build(doc document) (*Catalog, error) {
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("catalog: no items")
	}
	if len(doc.Boxes) == 0 {
		return nil, fmt.Errorf("catalog: no box types")
	}

	cat := &Catalog{Quantities: make(cratepack.Quantities, len(doc.Boxes))}

	for _, is := range doc.Items {
		rotation, err := parseRotation(is.Rotation)
		if err != nil {
			return nil, fmt.Errorf("catalog: item %q: %w", is.Name, err)
		}
		cat.Items = append(cat.Items, cratepack.NewItem(is.Name, is.Length, is.Width, is.Depth, is.Weight, rotation))
	}

	for _, bs := range doc.Boxes {
		if bs.Quantity < 0 {
			return nil, fmt.Errorf("catalog: box %q: quantity cannot be negative", bs.Name)
		}
		box := cratepack.NewBox(bs.Name, bs.OuterLength, bs.OuterWidth, bs.OuterDepth, bs.InnerLength, bs.InnerWidth, bs.InnerDepth, bs.EmptyWeight, bs.MaxPayload)
		cat.Boxes = append(cat.Boxes, box)
		cat.Quantities[box.ID] = bs.Quantity
	}

	return cat, nil
}

func parseRotation(s string) (cratepack.RotationPolicy, error) {
	switch s {
	case "", "never":
		return cratepack.RotationNever, nil
	case "keep-flat":
		return cratepack.RotationKeepFlat, nil
	case "any":
		return cratepack.RotationAny, nil
	default:
		return 0, fmt.Errorf("unknown rotation policy %q", s)
	}
}

// Default returns a small runnable example catalog, for demos and tests
// that don't want to depend on a file on disk.
func Default() *Catalog {
	cat, err := build(document{
		Items: []ItemSpec{
			{Name: "widget-small", Length: 100, Width: 80, Depth: 40, Weight: 250, Rotation: "any"},
			{Name: "widget-medium", Length: 200, Width: 150, Depth: 80, Weight: 900, Rotation: "keep-flat"},
			{Name: "widget-large", Length: 300, Width: 250, Depth: 150, Weight: 2200, Rotation: "never"},
		},
		Boxes: []BoxSpec{
			{Name: "small-carton", OuterLength: 320, OuterWidth: 220, OuterDepth: 160, InnerLength: 310, InnerWidth: 210, InnerDepth: 150, EmptyWeight: 300, MaxPayload: 8000, Quantity: 10},
			{Name: "medium-carton", OuterLength: 420, OuterWidth: 320, OuterDepth: 260, InnerLength: 410, InnerWidth: 310, InnerDepth: 250, EmptyWeight: 500, MaxPayload: 15000, Quantity: 10},
			{Name: "large-carton", OuterLength: 620, OuterWidth: 420, OuterDepth: 360, InnerLength: 610, InnerWidth: 410, InnerDepth: 350, EmptyWeight: 900, MaxPayload: 25000, Quantity: 5},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in default is invalid: %v", err))
	}
	return cat
}

// BoxByID looks a box up by its identity handle.
func (c *Catalog) BoxByID(id uuid.UUID) *cratepack.Box {
	for _, b := range c.Boxes {
		if b.ID == id {
			return b
		}
	}
	return nil
}
