package chart

import (
	"image/color"
	"testing"

	"go.viam.com/test"

	"github.com/taigrr/plot3d/pkg/math3d"
)

func unitRange(min, max float64) Range {
	var r Range
	r.Add(min)
	r.Add(max)
	return r
}

func TestComputeScale(t *testing.T) {
	x, y, z := unitRange(0, 2), unitRange(0, 4), unitRange(-1, 0)

	s := ComputeScale(x, y, z, nil, false, 0.5)
	test.That(t, s.X, test.ShouldEqual, 0.5)
	test.That(t, s.Y, test.ShouldEqual, 0.25)
	test.That(t, s.Z, test.ShouldEqual, 0.5)
	test.That(t, s.Value, test.ShouldEqual, 0)

	value := unitRange(10, 20)
	s = ComputeScale(x, y, z, &value, true, 1)
	test.That(t, s.X, test.ShouldEqual, 0.25)
	test.That(t, s.Y, test.ShouldEqual, 0.25)
	test.That(t, s.Z, test.ShouldEqual, 1)
	test.That(t, s.Value, test.ShouldEqual, 0.1)
	test.That(t, s.Vec3(), test.ShouldResemble, math3d.V3(0.25, 0.25, 1))
}

func testView(perspective bool) View {
	cam := NewCamera()
	return NewView(cam, Scale{X: 1, Y: 1, Z: 1}, DefaultEye, perspective, 400, math3d.V2(220, 200))
}

func TestViewProjectsArmLocationToCenter(t *testing.T) {
	for _, perspective := range []bool{true, false} {
		v := testView(perspective)
		t0 := v.Translate(math3d.Vec3{})
		test.That(t, t0.X, test.ShouldAlmostEqual, 0)
		test.That(t, t0.Y, test.ShouldAlmostEqual, 0)
		test.That(t, t0.Z, test.ShouldAlmostEqual, -1.7)

		s := v.Project(math3d.Vec3{})
		test.That(t, s.X, test.ShouldAlmostEqual, 220)
		test.That(t, s.Y, test.ShouldAlmostEqual, 200)
		test.That(t, v.Depth(t0), test.ShouldAlmostEqual, 1.7)
	}
}

func TestViewProjectIsPure(t *testing.T) {
	v := testView(true)
	p := math3d.V3(0.2, -0.1, 0.3)
	a := v.Project(p)
	b := v.Project(p)
	test.That(t, a, test.ShouldResemble, b)

	// higher points appear higher on the canvas
	up := v.Project(math3d.V3(0, 0, 0.1))
	test.That(t, up.Y, test.ShouldBeLessThan, 200)
}

func TestViewStrokeWidth(t *testing.T) {
	v := testView(true)
	tr := math3d.V3(0, 0, -2)
	test.That(t, v.StrokeWidth(4, tr), test.ShouldEqual, 2)
	test.That(t, v.DotRadius(4, tr), test.ShouldEqual, 2)

	v = testView(false)
	test.That(t, v.StrokeWidth(1.7, tr), test.ShouldAlmostEqual, 1)
	test.That(t, v.Depth(tr), test.ShouldEqual, 2)
}

func TestHSV(t *testing.T) {
	test.That(t, HSV(0, 1, 1), test.ShouldResemble, color.RGBA{R: 255, A: 255})
	test.That(t, HSV(120, 1, 1), test.ShouldResemble, color.RGBA{G: 255, A: 255})
	test.That(t, HSV(240, 1, 1), test.ShouldResemble, color.RGBA{B: 255, A: 255})

	c := HueColors(0)
	test.That(t, c.Fill, test.ShouldResemble, color.RGBA{R: 255, A: 255})
	test.That(t, c.Border, test.ShouldResemble, color.RGBA{R: 204, A: 255})
}

func TestHueFromZ(t *testing.T) {
	z := unitRange(0, 10)
	for _, vr := range []float64{1, 0.5, 2} {
		s := ComputeScale(unitRange(0, 1), unitRange(0, 1), z, nil, false, vr)
		test.That(t, HueFromZ(0, 0, s.Z, vr), test.ShouldAlmostEqual, 240)
		test.That(t, HueFromZ(10, 0, s.Z, vr), test.ShouldAlmostEqual, 0)
		test.That(t, HueFromZ(5, 0, s.Z, vr), test.ShouldAlmostEqual, 120)
	}

	test.That(t, HueFromValue(1, 1, 0.5), test.ShouldEqual, 240)
	test.That(t, HueFromValue(3, 1, 0.5), test.ShouldEqual, 0)
}
