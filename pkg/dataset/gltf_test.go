package dataset

import (
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"go.viam.com/test"

	"github.com/taigrr/plot3d/pkg/math3d"
)

func writeTestGLB(t *testing.T, positions ...[3]float32) string {
	t.Helper()
	data := make([]byte, 0, len(positions)*12)
	for _, p := range positions {
		for _, c := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(c))
		}
	}

	doc := gltf.NewDocument()
	doc.Buffers = []*gltf.Buffer{{ByteLength: len(data), Data: data}}
	doc.BufferViews = []*gltf.BufferView{{Buffer: 0, ByteLength: len(data)}}
	doc.Accessors = []*gltf.Accessor{{
		BufferView:    gltf.Index(0),
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         len(positions),
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name:       "points",
		Primitives: []*gltf.Primitive{{Attributes: map[string]int{gltf.POSITION: 0}}},
	}}

	path := filepath.Join(t.TempDir(), "points.glb")
	test.That(t, gltf.SaveBinary(doc, path), test.ShouldBeNil)
	return path
}

func TestLoadGLB(t *testing.T) {
	path := writeTestGLB(t, [3]float32{1, 2, 3}, [3]float32{-1, 0.5, 4})

	recs, err := LoadFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, recs, test.ShouldHaveLength, 2)
	// y up becomes z up
	test.That(t, recs[0].Point(), test.ShouldResemble, math3d.V3(1, 3, 2))
	test.That(t, recs[1].Point(), test.ShouldResemble, math3d.V3(-1, 4, 0.5))
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReadVec3AccessorBounds(t *testing.T) {
	doc := gltf.NewDocument()
	_, err := readVec3Accessor(doc, 0)
	test.That(t, err, test.ShouldNotBeNil)

	doc.Accessors = []*gltf.Accessor{{Type: gltf.AccessorScalar, ComponentType: gltf.ComponentFloat}}
	_, err = readVec3Accessor(doc, 0)
	test.That(t, err, test.ShouldNotBeNil)
}
