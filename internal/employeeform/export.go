package employeeform

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const designationsSheet = "Designations"

var designationHeaders = []interface{}{"Value", "Label"}

// ExportDesignations - книга Excel со списком должностей в том виде, в каком
// он попадает в выпадающий список. Опция по умолчанию не выгружается.
func ExportDesignations(options []Option) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", designationsSheet); err != nil {
		return nil, fmt.Errorf("ошибка создания листа: %w", err)
	}
	if err := f.SetSheetRow(designationsSheet, "A1", &designationHeaders); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания стиля заголовка: %w", err)
	}
	if err := f.SetCellStyle(designationsSheet, "A1", "B1", style); err != nil {
		return nil, err
	}

	row := 2
	for _, o := range options {
		if o.Value == "" {
			continue
		}
		cell, err := rowCell(row)
		if err != nil {
			return nil, err
		}
		values := []interface{}{o.Value, o.Label}
		if err := f.SetSheetRow(designationsSheet, cell, &values); err != nil {
			return nil, err
		}
		row++
	}
	if err := f.SetColWidth(designationsSheet, "A", "A", 20); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(designationsSheet, "B", "B", 30); err != nil {
		return nil, err
	}
	return f, nil
}

// rowCell - адрес первой ячейки строки row.
func rowCell(row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return "", fmt.Errorf("строка %d: %w", row, err)
	}
	return cell, nil
}
