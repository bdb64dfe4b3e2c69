package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"lcintel/internal/domain"
	"lcintel/internal/fields"
)

// WriteWorkbook writes the session results as an Excel workbook with
// one sheet per pipeline stage.
func WriteWorkbook(w io.Writer, extraction *domain.ExtractionResult, validation *domain.ValidationReport, verification map[string]*domain.VerificationResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeFieldsSheet(f, extraction, verification); err != nil {
		return err
	}
	if err := writeValidationSheet(f, validation); err != nil {
		return err
	}
	// The default sheet is replaced by the stage sheets.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeFieldsSheet(f *excelize.File, extraction *domain.ExtractionResult, verification map[string]*domain.VerificationResult) error {
	const sheet = "Fields"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, columns); err != nil {
		return err
	}

	rowNum := 2
	for _, section := range fields.Sections {
		for _, def := range section.Fields {
			row := fieldToRow(&section, &def, extraction, verification)
			if err := setRow(f, sheet, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writeValidationSheet(f *excelize.File, validation *domain.ValidationReport) error {
	const sheet = "Validation"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, []string{"Rule", "Passed", "Severity", "Message"}); err != nil {
		return err
	}
	if validation == nil {
		return nil
	}
	for i, check := range validation.Checks {
		row := []string{
			check.RuleName,
			formatBool(check.Passed),
			string(check.Severity),
			check.Message,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell := "A" + strconv.Itoa(rowNum)
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("set row %s!%s: %w", sheet, cell, err)
	}
	return nil
}
