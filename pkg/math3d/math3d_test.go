package math3d

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9 && math.Abs(a.Z-b.Z) < 1e-9
}

func TestAvg(t *testing.T) {
	got := Avg(V3(0, 2, -4), V3(2, 4, 4))
	if got != V3(1, 3, 0) {
		t.Errorf("Avg = %v, want (1, 3, 0)", got)
	}
}

func TestVec2Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"left turn", V2(1, 0), V2(0, 1), 1},
		{"right turn", V2(0, 1), V2(1, 0), -1},
		{"collinear", V2(2, 2), V2(1, 1), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.want {
				t.Errorf("Cross = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVec2Distance(t *testing.T) {
	if d := V2(0, 0).Distance(V2(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

// explicitRotation is the nested sine/cosine product form of the intrinsic
// Euler rotation that ViewRotation must reproduce.
func explicitRotation(rot, v Vec3) Vec3 {
	sinTx, cosTx := math.Sin(rot.X), math.Cos(rot.X)
	sinTy, cosTy := math.Sin(rot.Y), math.Cos(rot.Y)
	sinTz, cosTz := math.Sin(rot.Z), math.Cos(rot.Z)

	f0 := sinTz*v.Y + cosTz*v.X
	f1 := cosTy*v.Z + sinTy*f0
	f2 := cosTz*v.Y - sinTz*v.X

	return V3(
		cosTy*f0-sinTy*v.Z,
		sinTx*f1+cosTx*f2,
		cosTx*f1-sinTx*f2,
	)
}

func TestViewRotationMatchesEuler(t *testing.T) {
	tests := []struct {
		name string
		rot  Vec3
		v    Vec3
	}{
		{"identity", V3(0, 0, 0), V3(1, 2, 3)},
		{"default camera", V3(math.Pi/2-0.5, 0, -1), V3(0.3, -0.7, 0.2)},
		{"top view", V3(0, 0, -2.5), V3(-1, 0.5, 4)},
		{"all axes", V3(0.4, 0.9, -0.3), V3(2, -2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ViewRotation(tc.rot).MulVec3Dir(tc.v)
			want := explicitRotation(tc.rot, tc.v)
			if !vecNear(got, want) {
				t.Errorf("ViewRotation(%v) * %v = %v, want %v", tc.rot, tc.v, got, want)
			}
		})
	}
}
