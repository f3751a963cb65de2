// Command cratepack packs a JSON item/box catalog into boxes and prints a
// summary, optionally running the weight-balance pass and writing report
// artifacts to disk.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/oriongate/cratepack"
	"github.com/oriongate/cratepack/internal/catalog"
	"github.com/oriongate/cratepack/internal/packlog"
	"github.com/oriongate/cratepack/internal/report"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cratepack:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] != "pack" {
		return fmt.Errorf("usage: cratepack pack <catalog.json> [--weight-balance] [--report <dir>]")
	}

	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	weightBalance := fs.Bool("weight-balance", false, "run the weight redistribution pass after packing")
	reportDir := fs.String("report", "", "directory to write layer diagrams and a packing slip PDF into")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) > 1 {
		// Flags may also follow the catalog path, as in the usage line.
		if err := fs.Parse(rest[1:]); err != nil {
			return err
		}
	}
	var cat *catalog.Catalog
	var err error
	if len(rest) == 0 {
		cat = catalog.Default()
	} else {
		cat, err = catalog.Load(rest[0])
		if err != nil {
			return err
		}
	}

	logger := newLogger()
	sink := packlog.NewSlogSink(logger)
	packer := cratepack.NewPacker(sink)

	var result *cratepack.PackedBoxList
	if *weightBalance {
		result, err = packer.PackWithWeightBalance(cat.Items, cat.Boxes, cat.Quantities)
	} else {
		result, err = packer.Pack(cat.Items, cat.Boxes, cat.Quantities)
	}
	if err != nil {
		return err
	}

	printSummary(result)

	if *reportDir != "" {
		if err := writeReports(result, *reportDir); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(result *cratepack.PackedBoxList) {
	fmt.Printf("packed into %d box(es), total weight %d, weight variance %.2f\n",
		result.Count(), result.TotalWeight(), result.WeightVariance())
	for i, box := range result.Boxes {
		fmt.Printf("  box %d: %s (%d item(s), %.1f%% volume used, %d total weight)\n",
			i+1, box.Box.Name, box.ItemCount(), box.VolumeUtilisation()*100, box.TotalWeight())
	}
}

func writeReports(result *cratepack.PackedBoxList, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	slipPath := filepath.Join(dir, "packing-slip.pdf")
	f, err := os.Create(slipPath)
	if err != nil {
		return fmt.Errorf("create packing slip: %w", err)
	}
	defer f.Close()
	if err := report.RenderPackingSlip(result, f); err != nil {
		return fmt.Errorf("render packing slip: %w", err)
	}

	for i, box := range result.Boxes {
		for l := range box.Layers {
			img, err := report.RenderLayerDiagram(box, l)
			if err != nil {
				return fmt.Errorf("render layer diagram: %w", err)
			}
			imgPath := filepath.Join(dir, fmt.Sprintf("box-%d-layer-%d.png", i+1, l+1))
			out, err := os.Create(imgPath)
			if err != nil {
				return fmt.Errorf("create layer image: %w", err)
			}
			err = writePNG(out, img)
			out.Close()
			if err != nil {
				return fmt.Errorf("write layer image: %w", err)
			}
		}
	}
	return nil
}

func writePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
