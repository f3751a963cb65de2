// Package report renders a finished pack as human-readable artifacts: a
// top-down layer diagram and a per-box packing slip. Both renderers are
// read-only consumers of cratepack's result types and never re-run or
// mutate a pack.
package report

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/oriongate/cratepack"
)

const pixelsPerUnit = 0.5

var palette = []color.Color{
	color.RGBA{0x2e, 0x86, 0xab, 0xff},
	color.RGBA{0xa2, 0x3b, 0x72, 0xff},
	color.RGBA{0xf1, 0x8f, 0x01, 0xff},
	color.RGBA{0x4c, 0xaf, 0x50, 0xff},
	color.RGBA{0xc0, 0x39, 0x2b, 0xff},
}

// RenderLayerDiagram draws a top-down (x-y) view of one layer of box,
// one rectangle per item, labeled with the item's name.
func RenderLayerDiagram(box *cratepack.PackedBox, layerIndex int) (image.Image, error) {
	if layerIndex < 0 || layerIndex >= len(box.Layers) {
		return nil, fmt.Errorf("report: layer index %d out of range (box has %d layers)", layerIndex, len(box.Layers))
	}
	layer := box.Layers[layerIndex]

	w := float64(box.Box.InnerWidth) * pixelsPerUnit
	h := float64(box.Box.InnerLength) * pixelsPerUnit
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("report: box has zero inner footprint")
	}

	dc := gg.NewContext(int(w)+1, int(h)+1)
	dc.SetColor(color.White)
	dc.Clear()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("report: parse label font: %w", err)
	}
	face := truetype.NewFace(font, &truetype.Options{Size: 11})
	dc.SetFontFace(face)

	for i, it := range layer.Items {
		x := float64(it.X) * pixelsPerUnit
		y := float64(it.Y) * pixelsPerUnit
		iw := float64(it.Orientation.Width) * pixelsPerUnit
		il := float64(it.Orientation.Length) * pixelsPerUnit

		dc.SetColor(palette[i%len(palette)])
		dc.DrawRectangle(x, y, iw, il)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawRectangle(x, y, iw, il)
		dc.Stroke()

		dc.SetColor(color.White)
		dc.DrawStringAnchored(it.Item().Name, x+iw/2, y+il/2, 0.5, 0.5)
	}

	return dc.Image(), nil
}
