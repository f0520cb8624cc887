package parser

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/dbimport-go/pkg/dbimport/models"
)

type valueKind int

const (
	kindNull valueKind = iota
	kindInt
	kindFloat
	kindDate
	kindOther
)

// columnKind records which kinds of values a column holds.
type columnKind struct {
	null, ints, floats, dates, other bool
}

func (c *columnKind) add(k valueKind) {
	switch k {
	case kindNull:
		c.null = true
	case kindInt:
		c.ints = true
	case kindFloat:
		c.floats = true
	case kindDate:
		c.dates = true
	default:
		c.other = true
	}
}

// isFloat reports whether the column is numeric and can only be held as
// floating point: it mixes integers with decimals or with missing values.
func (c columnKind) isFloat() bool {
	if c.dates || c.other || !c.ints {
		return false
	}
	return c.floats || c.null
}

// promoteFloatColumns rewrites the integral values of float columns so they
// serialize with a decimal point, as 1.0 rather than 1.
func promoteFloatColumns(rows []models.Row, kinds []columnKind) {
	for colIdx, kind := range kinds {
		if !kind.isFloat() {
			continue
		}
		for _, row := range rows {
			switch v := row.Values[colIdx].(type) {
			case int64:
				row.Values[colIdx] = floatNumber(float64(v))
			case float64:
				if v == math.Trunc(v) {
					row.Values[colIdx] = floatNumber(v)
				}
			}
		}
	}
}

func floatNumber(f float64) json.Number {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return json.Number(s)
}
