package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// builtInDateFormats lists the built-in number format ids that render dates
// or times, including the East Asian locale ids 27-36 and 50-58.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// dateFormats reports whether a numeric cell is formatted as a date.
// Results are cached per style index.
type dateFormats struct {
	f        *excelize.File
	date1904 bool
	byStyle  map[int]bool
}

func newDateFormats(f *excelize.File) (*dateFormats, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	return &dateFormats{
		f:        f,
		date1904: props.Date1904 != nil && *props.Date1904,
		byStyle:  make(map[int]bool),
	}, nil
}

func (d *dateFormats) isDate(sheetName, cellName string) (bool, error) {
	idx, err := d.f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if v, ok := d.byStyle[idx]; ok {
		return v, nil
	}

	isDate := false
	// A style that cannot be resolved is treated as a plain number.
	if style, err := d.f.GetStyle(idx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = builtInDateFormats[style.NumFmt]
		}
	}
	d.byStyle[idx] = isDate
	return isDate, nil
}

// isDateFormatCode reports whether a number format code contains date or
// time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++ // skip the literal that follows
		default:
			b.WriteByte(c)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ydmhs")
}
