package report

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Indicators"

// WriteXLSX saves the frame as a workbook with a single sheet. NaN cells are
// left empty.
func WriteXLSX(path string, f *Frame) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), SheetName); err != nil {
		return err
	}

	headerStyle, err := fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return err
	}

	timeStyle, err := fx.NewStyle(&excelize.Style{NumFmt: 22})
	if err != nil {
		return err
	}

	headers := f.Headers()
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	if err := fx.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}

	if err := fx.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return err
	}

	for i := 0; i < f.Len(); i++ {
		row := []interface{}{f.Time(i)}
		for _, v := range f.Row(i) {
			if math.IsNaN(v) {
				row = append(row, nil)
			} else {
				row = append(row, v)
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		if err := fx.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}

		if err := fx.SetCellStyle(SheetName, cell, cell, timeStyle); err != nil {
			return err
		}
	}

	if err := fx.SetColWidth(SheetName, "A", "A", 20); err != nil {
		return err
	}

	log.Debugf("writing %d rows to %s", f.Len(), path)
	return fx.SaveAs(path)
}
