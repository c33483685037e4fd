// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"encoding/csv"
	"os"

	"github.com/xuri/excelize/v2"
)

var reportHeader = []string{"EC_number", "UniProt_ID", "Protein_Name", "Pfam_ID", "Pfam_Description"}

func (r DomainRow) record() []string {
	return []string{r.EC, r.Accession, r.ProteinName, r.PfamID, r.PfamName}
}

// WriteCSV writes a domain report as CSV with a header row.
func WriteCSV(path string, rows []DomainRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(reportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.record()); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteXLSX writes a domain report as an Excel workbook with a header row
// on Sheet1.
func WriteXLSX(path string, rows []DomainRow) error {
	f := excelize.NewFile()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	for i, h := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row.record() {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
