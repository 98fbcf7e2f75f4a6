package dataset

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// LoadGLB reads the vertex positions of every mesh in a glTF or GLB file as
// records. glTF is y-up, so the model's y becomes the chart's z.
func LoadGLB(path string) ([]Record, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open gltf")
	}

	var recs []Record
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, errors.Wrapf(err, "read positions of mesh %q", m.Name)
			}
			for _, p := range positions {
				recs = append(recs, Record{
					ColX: float64(p[0]),
					ColY: float64(p[2]),
					ColZ: float64(p[1]),
				})
			}
		}
	}
	if len(recs) == 0 {
		return nil, errors.Wrap(ErrInvalidData, "gltf has no vertex positions")
	}
	return recs, nil
}

// readVec3Accessor reads VEC3 float data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([][3]float32, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, errors.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, errors.Errorf("expected float VEC3, got %v / %v", accessor.Type, accessor.ComponentType)
	}
	if accessor.BufferView == nil {
		return nil, errors.New("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, errors.New("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}
	if end := start + (accessor.Count-1)*stride + 12; accessor.Count > 0 && end > len(buffer.Data) {
		return nil, errors.Errorf("accessor overruns buffer (%d > %d)", end, len(buffer.Data))
	}

	result := make([][3]float32, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		for j := range 3 {
			bits := binary.LittleEndian.Uint32(buffer.Data[offset+j*4:])
			result[i][j] = math.Float32frombits(bits)
		}
	}
	return result, nil
}
