package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/oriongate/cratepack"
)

// RenderPackingSlip emits a one-page-per-box PDF packing slip: box name
// and dimensions, an item table, and a QR code encoding the box's
// identity for warehouse scanning.
func RenderPackingSlip(list *cratepack.PackedBoxList, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for i, box := range list.Boxes {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, fmt.Sprintf("Packing Slip %d/%d", i+1, len(list.Boxes)), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("Box: %s", box.Box.Name), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("Outer dims: %d x %d x %d", box.Box.OuterLength, box.Box.OuterWidth, box.Box.OuterDepth), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("Total weight: %d", box.TotalWeight()), "", 1, "L", false, 0, "")
		pdf.Ln(4)

		qrPNG, err := qrcode.Encode(box.Box.ID.String(), qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("report: encode qr code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(box.Box.ID.String(), opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions(box.Box.ID.String(), 160, 15, 30, 30, false, opts, 0, "")

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(100, 6, "Item", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "Weight", "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, "Position", "1", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, it := range box.Items() {
			pdf.CellFormat(100, 6, it.Item().Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d", it.Item().Weight), "1", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("(%d,%d,%d)", it.X, it.Y, it.Z), "1", 1, "L", false, 0, "")
		}
	}

	return pdf.Output(w)
}
