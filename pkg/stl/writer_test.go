package stl

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/encase/pkg/geometry"
)

func testModel() *Model {
	model := NewModel("test_part")
	model.AddTriangle(geometry.NewTriangleFromVertices(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 0, 0),
		geometry.NewVector3(0, 10, 0),
	))
	model.AddTriangle(geometry.NewTriangleFromVertices(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 10, 0),
		geometry.NewVector3(0, 0, 10),
	))
	return model
}

func TestBinaryRoundTrip(t *testing.T) {
	model := testModel()
	path := filepath.Join(t.TempDir(), "out.stl")

	if err := Write(model, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	parsed, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if parsed.Name != model.Name {
		t.Errorf("name failed: expected %q, got %q", model.Name, parsed.Name)
	}
	if parsed.TriangleCount() != model.TriangleCount() {
		t.Fatalf("triangle count failed: expected %d, got %d",
			model.TriangleCount(), parsed.TriangleCount())
	}

	for i, want := range model.Triangles {
		got := parsed.Triangles[i]
		assertVectorClose(t, want.Normal, got.Normal)
		assertVectorClose(t, want.V1, got.V1)
		assertVectorClose(t, want.V2, got.V2)
		assertVectorClose(t, want.V3, got.V3)
	}
}

func TestBinaryWriteDeterministic(t *testing.T) {
	model := testModel()

	var first, second bytes.Buffer
	if err := WriteBinary(&first, model); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteBinary(&second, model); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two writes of the same model differ")
	}

	// 80-byte header + 4-byte count + 50 bytes per facet
	expected := 84 + 50*model.TriangleCount()
	if first.Len() != expected {
		t.Errorf("size failed: expected %d bytes, got %d", expected, first.Len())
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	model := testModel()
	path := filepath.Join(t.TempDir(), "out_ascii.stl")

	var buf bytes.Buffer
	if err := WriteASCII(&buf, model); err != nil {
		t.Fatalf("WriteASCII failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write temp file failed: %v", err)
	}

	parsed, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if parsed.Name != model.Name {
		t.Errorf("name failed: expected %q, got %q", model.Name, parsed.Name)
	}
	if parsed.TriangleCount() != model.TriangleCount() {
		t.Fatalf("triangle count failed: expected %d, got %d",
			model.TriangleCount(), parsed.TriangleCount())
	}
	for i, want := range model.Triangles {
		got := parsed.Triangles[i]
		assertVectorClose(t, want.V1, got.V1)
		assertVectorClose(t, want.V2, got.V2)
		assertVectorClose(t, want.V3, got.V3)
	}
}

func assertVectorClose(t *testing.T, want, got geometry.Vector3) {
	t.Helper()
	const tolerance = 1e-4
	if math.Abs(want.X-got.X) > tolerance ||
		math.Abs(want.Y-got.Y) > tolerance ||
		math.Abs(want.Z-got.Z) > tolerance {
		t.Errorf("vector failed: expected %v, got %v", want, got)
	}
}
