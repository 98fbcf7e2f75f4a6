package math3d

import (
	"math"
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := RotateX(0.3)
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkViewRotation(b *testing.B) {
	rot := V3(math.Pi/2-0.5, 0, -1)
	v := V3(0.3, -0.2, 0.9)

	for b.Loop() {
		_ = ViewRotation(rot).MulVec3Dir(v)
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}
