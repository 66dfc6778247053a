// dxf-takeoff — manufacturing takeoff estimates from DXF drawings
//
// Measures a 2D DXF drawing and reports total area, entity counts,
// bounding width/thickness, machine cut length and a derived weight
// figure, with optional PDF/XLSX report export.
//
// Build:
//   go build -o dxf-takeoff ./cmd/dxf-takeoff
//
// Usage:
//   dxf-takeoff [flags] <drawing.dxf>

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/piwi3910/dxf-takeoff/internal/export"
	"github.com/piwi3910/dxf-takeoff/internal/importer"
	"github.com/piwi3910/dxf-takeoff/internal/measure"
	"github.com/piwi3910/dxf-takeoff/internal/model"
	"github.com/piwi3910/dxf-takeoff/internal/project"
)

func main() {
	material := flag.String("material", "", "material preset name (see -materials)")
	feedRate := flag.Float64("feed", 0, "cutting feed rate in mm/min")
	kgPerMeter := flag.Float64("kg-per-meter", 0, "override the material's kg per meter of cut")
	pdfPath := flag.String("pdf", "", "write a PDF estimate report to this path")
	xlsxPath := flag.String("xlsx", "", "write an XLSX estimate report to this path")
	jsonOut := flag.Bool("json", false, "print the estimate as JSON instead of text")
	noHistory := flag.Bool("no-history", false, "do not record the estimate in the history file")
	listMaterials := flag.Bool("materials", false, "list material presets and exit")
	flag.Parse()

	if *listMaterials {
		for _, m := range model.Materials {
			fmt.Printf("%-18s %.2f kg/m  (%s)\n", m.Name, m.WeightPerMeter, m.Description)
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dxf-takeoff [flags] <drawing.dxf>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	file := flag.Arg(0)

	if err := importer.ValidatePath(file); err != nil {
		fatal(err)
	}

	cfg := loadConfig(*material, *feedRate, *kgPerMeter)

	result, err := importer.Load(file)
	if err != nil {
		fatal(err)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	est := measure.NewEstimate(file, result.Entities, cfg)

	if *jsonOut {
		data, err := json.MarshalIndent(est, "", "  ")
		if err != nil {
			fatal(err)
		}
		fmt.Println(string(data))
	} else {
		printEstimate(est)
	}

	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, est); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "PDF report written to %s\n", *pdfPath)
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, est); err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "XLSX report written to %s\n", *xlsxPath)
	}

	if !*noHistory {
		if err := project.AppendEstimate(project.DefaultHistoryPath(), est); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record estimate history: %v\n", err)
		}
	}
}

// loadConfig builds the estimate config from the saved app defaults with
// command-line overrides applied on top.
func loadConfig(material string, feedRate, kgPerMeter float64) model.EstimateConfig {
	cfg := model.DefaultEstimateConfig()

	appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load config: %v\n", err)
	} else {
		appCfg.ApplyToConfig(&cfg)
	}

	if material != "" {
		cfg.Material = material
	}
	if feedRate > 0 {
		cfg.FeedRate = feedRate
	}
	if kgPerMeter > 0 {
		cfg.WeightPerMeter = kgPerMeter
	}
	return cfg
}

func printEstimate(est model.Estimate) {
	fmt.Printf("Estimate %s — %s\n\n", est.ID, est.File)

	fmt.Println("Quantity of entities in the DXF file:")
	for _, name := range measure.CensusOrder {
		fmt.Printf("  %-12s %d\n", name, est.Census[name])
	}
	fmt.Println()

	fmt.Printf("Total area of all entities:  %.2f square units\n", est.Area)
	fmt.Printf("Object width:                %.2f units\n", est.Width)
	fmt.Printf("Object thickness:            %.2f units\n", est.Thickness)
	fmt.Printf("Machine cut length:          %.3f meters\n", est.CutLength)
	fmt.Printf("Weight of the design:        %.2f\n", est.Weight)
	fmt.Printf("Mass estimate (%s):          %.2f kg\n", est.Material, est.Mass)
	fmt.Printf("Cut time at configured feed: %.1f min\n", est.CutTimeMinutes)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
