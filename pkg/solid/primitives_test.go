package solid

import (
	"math"
	"testing"

	"github.com/philipparndt/encase/pkg/analysis"
	"github.com/philipparndt/encase/pkg/geometry"
)

func TestBoxRejectsInvertedBounds(t *testing.T) {
	_, err := Box(geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, 1, 1))
	if err == nil {
		t.Error("expected error for max <= min")
	}
}

func TestCylinder(t *testing.T) {
	ctx := DefaultContext()
	cyl, err := Cylinder(ctx, 6.0, 10.0)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	bbox := cyl.BoundingBox()
	if math.Abs(bbox.Min.X+3.0) > 1e-10 || math.Abs(bbox.Max.X-3.0) > 1e-10 ||
		math.Abs(bbox.Min.Y+3.0) > 1e-10 || math.Abs(bbox.Max.Y-3.0) > 1e-10 {
		t.Errorf("bounds failed: got %v to %v", bbox.Min, bbox.Max)
	}
	if bbox.Min.Z != 0 || bbox.Max.Z != 10.0 {
		t.Errorf("z bounds failed: got %v to %v", bbox.Min.Z, bbox.Max.Z)
	}

	// Volume of the inscribed prism: (n/2)·r²·sin(2π/n)·h
	n := float64(ctx.CircleSegments)
	expected := (n / 2.0) * 9.0 * math.Sin(2.0*math.Pi/n) * 10.0
	if math.Abs(cyl.Volume()-expected) > 1e-6 {
		t.Errorf("volume failed: expected %v, got %v", expected, cyl.Volume())
	}

	if !analysis.IsClosed(cyl.Mesh("cylinder")) {
		t.Error("cylinder tessellation is not closed")
	}
}

func TestCylinderRadiusByCircleFit(t *testing.T) {
	ctx := DefaultContext()
	cyl, err := Cylinder(ctx, 6.0, 10.0)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	// Rim vertices of the top cap, excluding the axis point
	var rim []geometry.Vector3
	for _, v := range analysis.VerticesAtHeight(cyl.Mesh("cylinder"), 10.0, 1e-9) {
		if math.Hypot(v.X, v.Y) > 1e-9 {
			rim = append(rim, v)
		}
	}

	fit, err := geometry.FitCircleXY(rim)
	if err != nil {
		t.Fatalf("circle fit failed: %v", err)
	}
	if math.Abs(fit.Radius-3.0) > 1e-9 {
		t.Errorf("fitted radius failed: expected 3.0, got %v", fit.Radius)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("rim is not circular: stddev %v", fit.StdDev)
	}
}

func TestCylinderRejectsBadParameters(t *testing.T) {
	ctx := DefaultContext()
	if _, err := Cylinder(ctx, 0, 10); err == nil {
		t.Error("expected error for zero diameter")
	}
	if _, err := Cylinder(ctx, 6, -1); err == nil {
		t.Error("expected error for negative height")
	}
	if _, err := Cylinder(&Context{CornerSegments: 1, FilletSegments: 1, CircleSegments: 2}, 6, 10); err == nil {
		t.Error("expected error for degenerate circle resolution")
	}
}

func TestFilletedBox(t *testing.T) {
	ctx := DefaultContext()
	box, err := FilletedBox(ctx, 82.2, 56.8, 31.575, 3.0, 1.5)
	if err != nil {
		t.Fatalf("FilletedBox failed: %v", err)
	}

	bbox := box.BoundingBox()
	if math.Abs(bbox.Min.X+41.1) > 1e-9 || math.Abs(bbox.Max.X-41.1) > 1e-9 {
		t.Errorf("x bounds failed: got %v to %v", bbox.Min.X, bbox.Max.X)
	}
	if math.Abs(bbox.Min.Y+28.4) > 1e-9 || math.Abs(bbox.Max.Y-28.4) > 1e-9 {
		t.Errorf("y bounds failed: got %v to %v", bbox.Min.Y, bbox.Max.Y)
	}
	if bbox.Min.Z != 0 || math.Abs(bbox.Max.Z-31.575) > 1e-9 {
		t.Errorf("z bounds failed: got %v to %v", bbox.Min.Z, bbox.Max.Z)
	}

	// The fillets carve material off the sharp box but only near the edges
	sharp := 82.2 * 56.8 * 31.575
	volume := box.Volume()
	if volume >= sharp {
		t.Errorf("volume %v not reduced below the sharp box %v", volume, sharp)
	}
	if volume < sharp-1000.0 {
		t.Errorf("volume %v lost more than the fillets can explain", volume)
	}

	if !analysis.IsClosed(box.Mesh("shell")) {
		t.Error("filleted box tessellation is not closed")
	}
}

func TestFilletedBoxRejectsBadRadii(t *testing.T) {
	ctx := DefaultContext()

	if _, err := FilletedBox(ctx, 80, 50, 30, 1.5, 3.0); err == nil {
		t.Error("expected error when horizontal fillet exceeds vertical fillet")
	}
	if _, err := FilletedBox(ctx, 10, 5, 30, 3.0, 1.5); err == nil {
		t.Error("expected error when vertical fillet exceeds the footprint")
	}
	if _, err := FilletedBox(ctx, 80, 50, 2.0, 3.0, 1.5); err == nil {
		t.Error("expected error when horizontal fillet exceeds the height")
	}
	if _, err := FilletedBox(ctx, 80, 50, -1, 3.0, 1.5); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestDefaultContextValid(t *testing.T) {
	if err := DefaultContext().Validate(); err != nil {
		t.Errorf("default context invalid: %v", err)
	}

	var nilCtx *Context
	if err := nilCtx.Validate(); err == nil {
		t.Error("expected error for nil context")
	}
}
