// Package dataset reads chart records from CSV, JSON and glTF files.
package dataset

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/taigrr/plot3d/pkg/math3d"
)

// Recognized columns.
const (
	ColX      = "x"
	ColY      = "y"
	ColZ      = "z"
	ColValue  = "value"
	ColFilter = "filter"
)

// ErrInvalidData is returned for input that is not a table of numbers.
var ErrInvalidData = errors.New("invalid data")

// Record is one row of a dataset, keyed by column name.
type Record map[string]float64

// Point returns the x, y and z columns. Missing columns read as 0.
func (r Record) Point() math3d.Vec3 {
	return math3d.V3(r[ColX], r[ColY], r[ColZ])
}

// Value returns the value column.
func (r Record) Value() (float64, bool) {
	v, ok := r[ColValue]
	return v, ok
}

// Filter returns the filter column.
func (r Record) Filter() (float64, bool) {
	v, ok := r[ColFilter]
	return v, ok
}

// HasColumn reports whether any record has the column.
func HasColumn(recs []Record, col string) bool {
	for _, r := range recs {
		if _, ok := r[col]; ok {
			return true
		}
	}
	return false
}

// FromMaps converts loosely typed rows, as decoded from JSON, into records.
// Numbers, numeric strings and booleans are accepted; nil cells are skipped.
func FromMaps(rows []map[string]any) ([]Record, error) {
	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec := make(Record, len(row))
		for col, raw := range row {
			if raw == nil {
				continue
			}
			v, err := cast.ToFloat64E(raw)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidData, "row %d column %q: %v", i, col, err)
			}
			rec[col] = v
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
