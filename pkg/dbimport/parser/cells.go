// Package parser provides sheet parsing utilities.
package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/dbimport-go/pkg/dbimport/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet into column names and data rows.
// The first non-blank row supplies the column names; blank rows are skipped.
func ReadSheet(f *excelize.File, sheetName string) ([]string, []models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	first, last, width := findDataBounds(rows)
	if first < 0 {
		return nil, nil, nil
	}

	columns := ColumnNames(rows[first], width)
	formats, err := newDateFormats(f)
	if err != nil {
		return nil, nil, err
	}

	kinds := make([]columnKind, len(columns))
	var result []models.Row
	for rowIdx := first + 1; rowIdx <= last; rowIdx++ {
		row := rows[rowIdx]
		if isBlankRow(row) {
			continue
		}
		rowNum := rowIdx + 1 // 1-based row index
		values := make([]interface{}, len(columns))

		for colIdx := range columns {
			cellValue := ""
			if colIdx < len(row) {
				cellValue = row[colIdx]
			}
			if cellValue == "" {
				kinds[colIdx].add(kindNull)
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, nil, err
			}
			v, kind, err := typedValue(f, sheetName, cellName, cellValue, formats)
			if err != nil {
				return nil, nil, err
			}
			values[colIdx] = v
			kinds[colIdx].add(kind)
		}

		result = append(result, models.Row{R: rowNum, Values: values})
	}

	promoteFloatColumns(result, kinds)
	return columns, result, nil
}

// missingValues are the cell texts read as missing values.
var missingValues = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// typedValue converts a raw cell value to the JSON value it stands for.
// Error cells and missing-value markers become nil.
func typedValue(f *excelize.File, sheetName, cellName, raw string, formats *dateFormats) (interface{}, valueKind, error) {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, kindNull, err
	}

	switch cellType {
	case excelize.CellTypeError:
		return nil, kindNull, nil
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b, kindOther, nil
		}
		return raw, kindOther, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		if missingValues[raw] {
			return nil, kindNull, nil
		}
		return raw, kindOther, nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return t.UnixMilli(), kindDate, nil
		}
	}

	v := parseValue(raw)
	if _, isString := v.(string); isString {
		if missingValues[raw] {
			return nil, kindNull, nil
		}
		return v, kindOther, nil
	}
	numKind := kindFloat
	if _, isInt := v.(int64); isInt {
		numKind = kindInt
	}

	isDate, err := formats.isDate(sheetName, cellName)
	if err != nil {
		return nil, kindNull, err
	}
	if !isDate {
		return v, numKind, nil
	}
	serial, _ := strconv.ParseFloat(raw, 64)
	t, err := excelize.ExcelDateToTime(serial, formats.date1904)
	if err != nil {
		return v, numKind, nil
	}
	return t.UnixMilli(), kindDate, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	// Return as string
	return s
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseISODate parses the ISO 8601 text stored in date-typed cells.
func parseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
