package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/dxf-takeoff/internal/measure"
	"github.com/piwi3910/dxf-takeoff/internal/model"
)

const estimateSheet = "Estimate"

// ExportXLSX writes the estimate as a workbook: the measured figures on
// the first sheet, the entity census on a second.
func ExportXLSX(path string, est model.Estimate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", estimateSheet); err != nil {
		return fmt.Errorf("failed to set up workbook: %w", err)
	}

	header := [][]interface{}{
		{"Estimate ID", est.ID},
		{"File", est.File},
		{"Created", est.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Material", est.Material},
		{},
		{"Total area (mm²)", est.Area},
		{"Width (mm)", est.Width},
		{"Thickness (mm)", est.Thickness},
		{"Cut length (m)", est.CutLength},
		{"Weight (volume proxy)", est.Weight},
		{"Mass estimate (kg)", est.Mass},
		{"Cut time (min)", est.CutTimeMinutes},
	}
	for i, row := range header {
		if len(row) == 0 {
			continue
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(estimateSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write estimate row: %w", err)
		}
	}

	if err := writeCensusSheet(f, est.Census); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeCensusSheet(f *excelize.File, census map[string]int) error {
	const sheet = "Census"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add census sheet: %w", err)
	}

	headerRow := []interface{}{"Entity type", "Count"}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write census header: %w", err)
	}
	for i, name := range measure.CensusOrder {
		row := []interface{}{name, census[name]}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write census row: %w", err)
		}
	}
	return nil
}
