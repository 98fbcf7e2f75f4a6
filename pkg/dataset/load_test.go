package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/taigrr/plot3d/pkg/math3d"
)

func TestLoadCSV(t *testing.T) {
	in := "x, y, z, value\n1, 2, 3, 4\n5,6,7,\n"
	recs, err := LoadCSV(strings.NewReader(in))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, recs, test.ShouldHaveLength, 2)
	test.That(t, recs[0].Point(), test.ShouldResemble, math3d.V3(1, 2, 3))

	v, ok := recs[0].Value()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, v, test.ShouldEqual, 4)

	_, ok = recs[1].Value()
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, HasColumn(recs, ColValue), test.ShouldBeTrue)
	test.That(t, HasColumn(recs, ColFilter), test.ShouldBeFalse)
}

func TestLoadCSVInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not a number", "x,y,z\n1,two,3\n"},
		{"ragged", "x,y,z\n1,2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tc.in))
			test.That(t, errors.Is(err, ErrInvalidData), test.ShouldBeTrue)
		})
	}
}

func TestLoadJSON(t *testing.T) {
	in := `[{"x": 1, "y": "2", "z": 3, "filter": 1}, {"x": 4, "y": 5, "z": 6, "value": null}]`
	recs, err := LoadJSON(strings.NewReader(in))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, recs, test.ShouldHaveLength, 2)
	test.That(t, recs[0].Point(), test.ShouldResemble, math3d.V3(1, 2, 3))

	f, ok := recs[0].Filter()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, f, test.ShouldEqual, 1)

	_, ok = recs[1].Value()
	test.That(t, ok, test.ShouldBeFalse)

	_, err = LoadJSON(strings.NewReader(`{"x": 1}`))
	test.That(t, errors.Is(err, ErrInvalidData), test.ShouldBeTrue)

	_, err = LoadJSON(strings.NewReader(`[{"x": "one"}]`))
	test.That(t, errors.Is(err, ErrInvalidData), test.ShouldBeTrue)
}

func TestFromMaps(t *testing.T) {
	recs, err := FromMaps([]map[string]any{{"x": int64(3), "y": 1.5, "z": true}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, recs[0].Point(), test.ShouldResemble, math3d.V3(3, 1.5, 1))

	_, err = FromMaps([]map[string]any{{"x": []int{1}}})
	test.That(t, errors.Is(err, ErrInvalidData), test.ShouldBeTrue)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "points.csv")
	test.That(t, os.WriteFile(csvPath, []byte("x,y,z\n0,0,1\n"), 0o644), test.ShouldBeNil)
	recs, err := LoadFile(csvPath)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, recs, test.ShouldHaveLength, 1)

	jsonPath := filepath.Join(dir, "points.JSON")
	test.That(t, os.WriteFile(jsonPath, []byte(`[{"x":0,"y":0,"z":1}]`), 0o644), test.ShouldBeNil)
	recs, err = LoadFile(jsonPath)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, recs, test.ShouldHaveLength, 1)

	txtPath := filepath.Join(dir, "points.txt")
	test.That(t, os.WriteFile(txtPath, []byte("x"), 0o644), test.ShouldBeNil)
	_, err = LoadFile(txtPath)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	test.That(t, err, test.ShouldNotBeNil)
}
