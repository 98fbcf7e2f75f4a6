package dataset

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// LoadFile reads records from path, choosing the format by extension.
func LoadFile(path string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".glb" || ext == ".gltf" {
		return LoadGLB(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	switch ext {
	case ".csv":
		return LoadCSV(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, errors.Errorf("unsupported format: %s (use .csv, .json or .glb)", ext)
	}
}

// LoadCSV reads records from CSV with a header row naming the columns.
// Empty cells are skipped.
func LoadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidData, "read csv header: "+err.Error())
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var recs []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidData, "read csv line %d: %v", line, err)
		}
		rec := make(Record, len(row))
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := cast.ToFloat64E(cell)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidData, "line %d column %q: %v", line, header[i], err)
			}
			rec[header[i]] = v
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// LoadJSON reads records from a JSON array of objects.
func LoadJSON(r io.Reader) ([]Record, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrapf(ErrInvalidData, "decode json: %v", err)
	}
	return FromMaps(rows)
}
