// Package models defines data structures for sheet conversion.
package models

// Row represents a single data row of a sheet.
type Row struct {
	// R is the row index in the sheet (1-based).
	R int `json:"r"`
	// Values holds one cell value per dataset column: string, bool, int64,
	// float64 or json.Number for floats written with a decimal point.
	// A nil entry is a missing value.
	Values []interface{} `json:"values"`
}

// Dataset represents the tabular contents of a single sheet.
type Dataset struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the rows were read from.
	SheetName string `json:"sheet_name"`
	// Columns are the column names taken from the header row, in sheet order.
	Columns []string `json:"columns"`
	// Rows are the data rows following the header, in sheet order.
	Rows []Row `json:"rows,omitempty"`
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}
