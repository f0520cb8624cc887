// Package output serializes converted sheets to JSON.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/ukaji3/dbimport-go/pkg/dbimport/models"
)

// Indent is the indentation used for the output document.
const Indent = "    "

// Records renders each dataset row as an object keyed by column name,
// preserving column order.
func Records(ds *models.Dataset) []*orderedmap.OrderedMap {
	records := make([]*orderedmap.OrderedMap, 0, ds.Len())
	if ds == nil {
		return records
	}
	for _, row := range ds.Rows {
		record := orderedmap.New()
		record.SetEscapeHTML(false)
		for i, column := range ds.Columns {
			var v interface{}
			if i < len(row.Values) {
				v = row.Values[i]
			}
			record.Set(column, v)
		}
		records = append(records, record)
	}
	return records
}

// ToJSON serializes the dataset as a JSON array of row objects.
// An empty indent produces compact output. No trailing newline is written.
func ToJSON(ds *models.Dataset, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(Records(ds)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
