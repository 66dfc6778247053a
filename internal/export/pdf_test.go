package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/dxf-takeoff/internal/measure"
	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// buildTestEstimate creates a realistic estimate for testing.
func buildTestEstimate() model.Estimate {
	entities := []model.Entity{
		model.Line{Start: model.Point2D{X: 0, Y: 0}, End: model.Point2D{X: 100, Y: 0}},
		model.Line{Start: model.Point2D{X: 100, Y: 0}, End: model.Point2D{X: 100, Y: 50}},
		model.Circle{Center: model.Point2D{X: 50, Y: 25}, Radius: 10},
		model.Arc{Center: model.Point2D{X: 20, Y: 25}, Radius: 5, StartAngle: 0, EndAngle: 180},
		model.Text{Value: "bracket rev B"},
	}
	est := measure.NewEstimate("bracket.dxf", entities, model.DefaultEstimateConfig())
	est.ID = "abcd1234"
	est.CreatedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return est
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimate.pdf")

	if err := ExportPDF(path, buildTestEstimate()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A one-page report with an embedded QR image should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyDrawing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	// An estimate with all-zero figures is still a valid report.
	est := measure.NewEstimate("empty.dxf", nil, model.DefaultEstimateConfig())
	if err := ExportPDF(path, est); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestMetricRows(t *testing.T) {
	rows := metricRows(buildTestEstimate())
	if len(rows) != 8 {
		t.Fatalf("expected 8 metric rows, got %d", len(rows))
	}
	if rows[0][0] != "Material" {
		t.Errorf("expected Material first, got %q", rows[0][0])
	}
}
