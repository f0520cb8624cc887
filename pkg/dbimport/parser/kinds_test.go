package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/dbimport-go/pkg/dbimport/models"
)

func TestColumnKindIsFloat(t *testing.T) {
	tests := []struct {
		name  string
		kinds []valueKind
		want  bool
	}{
		{"ints only", []valueKind{kindInt, kindInt}, false},
		{"ints with blanks", []valueKind{kindInt, kindNull}, true},
		{"ints with decimals", []valueKind{kindInt, kindFloat}, true},
		{"decimals only", []valueKind{kindFloat}, false},
		{"ints with text", []valueKind{kindInt, kindNull, kindOther}, false},
		{"dates with blanks", []valueKind{kindDate, kindNull}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c columnKind
			for _, k := range tt.kinds {
				c.add(k)
			}
			assert.Equal(t, tt.want, c.isFloat())
		})
	}
}

func TestPromoteFloatColumns(t *testing.T) {
	rows := []models.Row{
		{R: 2, Values: []interface{}{int64(1), int64(7), 2.5}},
		{R: 3, Values: []interface{}{nil, int64(8), 3.0}},
	}
	kinds := []columnKind{
		{ints: true, null: true},
		{ints: true},
		{ints: true, floats: true},
	}

	promoteFloatColumns(rows, kinds)

	assert.Equal(t, json.Number("1.0"), rows[0].Values[0])
	assert.Nil(t, rows[1].Values[0])
	assert.Equal(t, int64(7), rows[0].Values[1], "integer-only columns stay integers")
	assert.Equal(t, 2.5, rows[0].Values[2])
	assert.Equal(t, json.Number("3.0"), rows[1].Values[2])
}

func TestFloatNumber(t *testing.T) {
	assert.Equal(t, json.Number("1.0"), floatNumber(1))
	assert.Equal(t, json.Number("-12.0"), floatNumber(-12))
	assert.Equal(t, json.Number("0.25"), floatNumber(0.25))
}
