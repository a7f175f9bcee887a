package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleNormalFromWinding(t *testing.T) {
	// Counter-clockwise in the XY plane seen from +Z
	tri := NewTriangleFromVertices(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	if tri.Normal != NewVector3(0, 0, 1) {
		t.Errorf("Normal derivation failed: expected (0,0,1), got %v", tri.Normal)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	// Unit cube as 12 triangles; signed volumes must sum to 1
	cube := unitCubeTriangles()

	volume := 0.0
	for _, tri := range cube {
		volume += tri.SignedVolume()
	}

	if math.Abs(volume-1.0) > 1e-10 {
		t.Errorf("SignedVolume sum failed: expected 1.0, got %v", volume)
	}
}

// unitCubeTriangles returns the surface of the unit cube with outward
// windings
func unitCubeTriangles() []Triangle {
	v := func(x, y, z float64) Vector3 { return NewVector3(x, y, z) }
	quads := [][4]Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)}, // bottom
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)}, // top
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)}, // -Y
		{v(1, 1, 0), v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)}, // +Y
		{v(0, 1, 0), v(0, 0, 0), v(0, 0, 1), v(0, 1, 1)}, // -X
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)}, // +X
	}

	var triangles []Triangle
	for _, q := range quads {
		triangles = append(triangles,
			NewTriangleFromVertices(q[0], q[1], q[2]),
			NewTriangleFromVertices(q[0], q[2], q[3]),
		)
	}
	return triangles
}
