package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/encase/pkg/geometry"
	"github.com/philipparndt/encase/pkg/stl"
)

// cubeModel returns a unit cube shifted to span min..min+1 on every axis
func cubeModel(min float64) *stl.Model {
	v := func(x, y, z float64) geometry.Vector3 {
		return geometry.NewVector3(min+x, min+y, min+z)
	}
	quads := [][4]geometry.Vector3{
		{v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0)}, // bottom
		{v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)}, // top
		{v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1)}, // -Y
		{v(1, 1, 0), v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)}, // +Y
		{v(0, 1, 0), v(0, 0, 0), v(0, 0, 1), v(0, 1, 1)}, // -X
		{v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1)}, // +X
	}

	model := stl.NewModel("cube")
	for _, q := range quads {
		model.AddTriangle(geometry.NewTriangleFromVertices(q[0], q[1], q[2]))
		model.AddTriangle(geometry.NewTriangleFromVertices(q[0], q[2], q[3]))
	}
	return model
}

func TestAnalyzeModelCube(t *testing.T) {
	result := AnalyzeModel(cubeModel(0))

	if result.TriangleCount != 12 {
		t.Errorf("triangle count failed: expected 12, got %d", result.TriangleCount)
	}
	if math.Abs(result.SurfaceArea-6.0) > 1e-10 {
		t.Errorf("surface area failed: expected 6.0, got %v", result.SurfaceArea)
	}
	if math.Abs(result.Volume-1.0) > 1e-10 {
		t.Errorf("volume failed: expected 1.0, got %v", result.Volume)
	}
	if result.Dimensions != geometry.NewVector3(1, 1, 1) {
		t.Errorf("dimensions failed: got %v", result.Dimensions)
	}

	// Edges are unit sides and sqrt(2) face diagonals
	if math.Abs(result.MinEdgeLength-1.0) > 1e-10 {
		t.Errorf("min edge failed: got %v", result.MinEdgeLength)
	}
	if math.Abs(result.MaxEdgeLength-math.Sqrt2) > 1e-10 {
		t.Errorf("max edge failed: got %v", result.MaxEdgeLength)
	}
}

func TestVolumeIndependentOfOrigin(t *testing.T) {
	// The signed-tetrahedron sum must not depend on where the solid sits
	at0 := AnalyzeModel(cubeModel(0)).Volume
	at100 := AnalyzeModel(cubeModel(100)).Volume

	if math.Abs(at0-at100) > 1e-6 {
		t.Errorf("volume changed with position: %v vs %v", at0, at100)
	}
}

func TestIsClosed(t *testing.T) {
	if !IsClosed(cubeModel(0)) {
		t.Error("cube must be closed")
	}

	// Removing one facet opens the surface
	open := cubeModel(0)
	open.Triangles = open.Triangles[:len(open.Triangles)-1]
	if IsClosed(open) {
		t.Error("cube with a missing facet must not be closed")
	}
}

func TestVerticesAtHeight(t *testing.T) {
	vertices := VerticesAtHeight(cubeModel(0), 1.0, 1e-9)

	if len(vertices) != 4 {
		t.Fatalf("expected 4 distinct top vertices, got %d", len(vertices))
	}
	for _, v := range vertices {
		if v.Z != 1.0 {
			t.Errorf("vertex %v not at height 1.0", v)
		}
	}
}

func TestFindEdges(t *testing.T) {
	result := AnalyzeModel(cubeModel(0))

	longest := FindLongestEdges(result, 5)
	if len(longest) != 5 {
		t.Fatalf("expected 5 edges, got %d", len(longest))
	}
	if math.Abs(longest[0].Length-math.Sqrt2) > 1e-10 {
		t.Errorf("longest edge failed: got %v", longest[0].Length)
	}

	shortest := FindShortestEdges(result, 1)
	if math.Abs(shortest[0].Length-1.0) > 1e-10 {
		t.Errorf("shortest edge failed: got %v", shortest[0].Length)
	}

	diagonals := FindEdgesByLength(result, 1.1, 1.5)
	for _, e := range diagonals {
		if math.Abs(e.Length-math.Sqrt2) > 1e-10 {
			t.Errorf("range filter failed: got edge of length %v", e.Length)
		}
	}
}

func TestFindNearestVertex(t *testing.T) {
	model := cubeModel(0)

	nearest, dist := FindNearestVertex(model, geometry.NewVector3(-1, 0, 0))
	if nearest != geometry.NewVector3(0, 0, 0) {
		t.Errorf("nearest vertex failed: got %v", nearest)
	}
	if math.Abs(dist-1.0) > 1e-10 {
		t.Errorf("distance failed: got %v", dist)
	}
}
