// Package export renders takeoff estimates to shareable file formats:
// a one-page PDF report with a QR-coded estimate reference, and an XLSX
// workbook for spreadsheet-based quoting.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/dxf-takeoff/internal/measure"
	"github.com/piwi3910/dxf-takeoff/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	headerHeight = 12.0
	rowHeight    = 7.0
	labelColW    = 70.0
	valueColW    = 60.0
	qrSize       = 30.0 // QR code size in mm
)

// ExportPDF writes a single-page estimate report. The header carries the
// estimate ID and source file, followed by the measured figures, the
// entity census, and a QR code encoding the estimate record as JSON.
func ExportPDF(path string, est model.Estimate) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "DXF Takeoff Estimate", "", 1, "L", false, 0, "")

	// Reference line
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetX(marginLeft)
	ref := fmt.Sprintf("Estimate %s | %s | %s", est.ID, est.File, est.CreatedAt.Format("2006-01-02 15:04 UTC"))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, ref, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	renderMetricRows(pdf, est)
	pdf.Ln(6)
	renderCensusTable(pdf, est.Census)

	if err := renderQR(pdf, est); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// metricRows flattens the estimate into label/value report lines.
func metricRows(est model.Estimate) [][2]string {
	return [][2]string{
		{"Material", est.Material},
		{"Total area", fmt.Sprintf("%.2f mm²", est.Area)},
		{"Width", fmt.Sprintf("%.2f mm", est.Width)},
		{"Thickness", fmt.Sprintf("%.2f mm", est.Thickness)},
		{"Machine cut length", fmt.Sprintf("%.3f m", est.CutLength)},
		{"Weight (volume proxy)", fmt.Sprintf("%.2f", est.Weight)},
		{"Mass estimate", fmt.Sprintf("%.2f kg", est.Mass)},
		{"Cut time estimate", fmt.Sprintf("%.1f min", est.CutTimeMinutes)},
	}
}

func renderMetricRows(pdf *fpdf.Fpdf, est model.Estimate) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(labelColW+valueColW, rowHeight, "Measurements", "B", 1, "L", false, 0, "")

	for i, row := range metricRows(est) {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(labelColW, rowHeight, row[0], "", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(valueColW, rowHeight, row[1], "", 1, "R", true, 0, "")
	}
}

func renderCensusTable(pdf *fpdf.Fpdf, census map[string]int) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(labelColW+valueColW, rowHeight, "Entity census", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, name := range measure.CensusOrder {
		pdf.SetX(marginLeft)
		pdf.CellFormat(labelColW, rowHeight-1, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueColW, rowHeight-1, fmt.Sprintf("%d", census[name]), "", 1, "R", false, 0, "")
	}
}

// renderQR places a QR code encoding the estimate JSON in the top-right
// corner of the page.
func renderQR(pdf *fpdf.Fpdf, est model.Estimate) error {
	data, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("failed to marshal estimate: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", est.ID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
