package parser

// findDataBounds finds the first and last non-blank rows (0-based) and the
// column count needed to hold every non-empty cell from column A onwards.
// first is -1 when the sheet holds no data.
func findDataBounds(rows [][]string) (first, last, width int) {
	first, last = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if first < 0 {
				first = rowIdx
			}
			last = rowIdx
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
	}

	return
}
