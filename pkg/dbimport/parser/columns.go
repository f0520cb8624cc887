package parser

import "fmt"

// ColumnNames derives width column names from a header row.
// Blank headers become "Unnamed: <index>" and repeated names get ".1", ".2"
// suffixes so every name is unique.
func ColumnNames(header []string, width int) []string {
	if len(header) > width {
		width = len(header)
	}

	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		base := name
		if n, dup := seen[base]; dup {
			for {
				name = fmt.Sprintf("%s.%d", base, n)
				n++
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[name] = 1
		names[i] = name
	}

	return names
}
