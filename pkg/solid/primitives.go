package solid

import (
	"fmt"
	"math"

	"github.com/philipparndt/encase/pkg/geometry"
)

// Box creates an axis-aligned rectangular prism spanning min to max
func Box(min, max geometry.Vector3) (*Solid, error) {
	if max.X <= min.X || max.Y <= min.Y || max.Z <= min.Z {
		return nil, fmt.Errorf("box max %v must exceed min %v on every axis", max, min)
	}

	x0, y0, z0 := min.X, min.Y, min.Z
	x1, y1, z1 := max.X, max.Y, max.Z

	v := func(x, y, z float64) geometry.Vector3 {
		return geometry.NewVector3(x, y, z)
	}

	// One convex quad per face, wound counter-clockwise seen from outside
	polygons := []Polygon{
		newPolygon([]geometry.Vector3{v(x0, y0, z0), v(x0, y1, z0), v(x1, y1, z0), v(x1, y0, z0)}), // bottom
		newPolygon([]geometry.Vector3{v(x0, y0, z1), v(x1, y0, z1), v(x1, y1, z1), v(x0, y1, z1)}), // top
		newPolygon([]geometry.Vector3{v(x0, y0, z0), v(x1, y0, z0), v(x1, y0, z1), v(x0, y0, z1)}), // -Y
		newPolygon([]geometry.Vector3{v(x1, y1, z0), v(x0, y1, z0), v(x0, y1, z1), v(x1, y1, z1)}), // +Y
		newPolygon([]geometry.Vector3{v(x0, y1, z0), v(x0, y0, z0), v(x0, y0, z1), v(x0, y1, z1)}), // -X
		newPolygon([]geometry.Vector3{v(x1, y0, z0), v(x1, y1, z0), v(x1, y1, z1), v(x1, y0, z1)}), // +X
	}

	return fromPolygons(polygons), nil
}

// Cylinder creates a z-axis cylinder of the given diameter, based at z=0 and
// centered on the origin
func Cylinder(ctx *Context, diameter, height float64) (*Solid, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if diameter <= 0 || height <= 0 {
		return nil, fmt.Errorf("cylinder diameter and height must be positive, got ⌀%g × %g", diameter, height)
	}

	radius := diameter / 2.0
	n := ctx.CircleSegments

	ring := make([]geometry.Vector3, n)
	for i := 0; i < n; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(n)
		ring[i] = geometry.NewVector3(radius*math.Cos(angle), radius*math.Sin(angle), 0)
	}

	top := geometry.NewVector3(0, 0, height)
	lift := func(p geometry.Vector3) geometry.Vector3 {
		return geometry.NewVector3(p.X, p.Y, height)
	}

	var polygons []Polygon
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		// Side wall quad, outward facing
		polygons = append(polygons, newPolygon([]geometry.Vector3{
			ring[i], ring[j], lift(ring[j]), lift(ring[i]),
		}))
		// Caps as fans around the axis
		polygons = append(polygons, newPolygon([]geometry.Vector3{
			geometry.NewVector3(0, 0, 0), ring[j], ring[i],
		}))
		polygons = append(polygons, newPolygon([]geometry.Vector3{
			top, lift(ring[i]), lift(ring[j]),
		}))
	}

	return fromPolygons(polygons), nil
}

// FilletedBox creates a rectangular box based at z=0 and centered in XY, with
// the four vertical edges rounded at vertRadius and all horizontal edges
// rounded at horizRadius. The result is the shape produced by filleting a
// sharp box first along its vertical edges and then along its horizontal
// ones.
func FilletedBox(ctx *Context, length, width, height, vertRadius, horizRadius float64) (*Solid, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("box dimensions must be positive, got %g × %g × %g", length, width, height)
	}
	if vertRadius <= 0 || horizRadius <= 0 {
		return nil, fmt.Errorf("fillet radii must be positive, got %g and %g", vertRadius, horizRadius)
	}
	if horizRadius >= vertRadius {
		return nil, fmt.Errorf("horizontal fillet %g must be smaller than vertical fillet %g", horizRadius, vertRadius)
	}
	if 2.0*vertRadius >= math.Min(length, width) {
		return nil, fmt.Errorf("vertical fillet %g too large for %g × %g footprint", vertRadius, length, width)
	}
	if 2.0*horizRadius >= height {
		return nil, fmt.Errorf("horizontal fillet %g too large for height %g", horizRadius, height)
	}

	// The wall is a stack of rounded-rectangle rings. Over the top and
	// bottom fillet bands the outline is inset by the rolling arc; the
	// corner arc centers stay fixed so the corner radius shrinks with the
	// same inset.
	fs := ctx.FilletSegments
	type ringSpec struct {
		z     float64
		inset float64
	}
	specs := make([]ringSpec, 0, 2*(fs+1))
	for i := 0; i <= fs; i++ {
		phi := (math.Pi / 2.0) * float64(i) / float64(fs)
		specs = append(specs, ringSpec{
			z:     horizRadius * (1.0 - math.Cos(phi)),
			inset: horizRadius * (1.0 - math.Sin(phi)),
		})
	}
	for i := 0; i <= fs; i++ {
		phi := (math.Pi / 2.0) * float64(i) / float64(fs)
		specs = append(specs, ringSpec{
			z:     (height - horizRadius) + horizRadius*math.Sin(phi),
			inset: horizRadius * (1.0 - math.Cos(phi)),
		})
	}

	rings := make([][]geometry.Vector3, len(specs))
	for i, spec := range specs {
		rings[i] = roundedRectRing(ctx, length, width, vertRadius, spec.inset, spec.z)
	}

	var polygons []Polygon

	// Side wall strips between consecutive rings. The corner regions are
	// doubly curved, so everything is emitted as triangles.
	for k := 0; k+1 < len(rings); k++ {
		lower, upper := rings[k], rings[k+1]
		n := len(lower)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			polygons = append(polygons,
				newPolygon([]geometry.Vector3{lower[i], lower[j], upper[j]}),
				newPolygon([]geometry.Vector3{lower[i], upper[j], upper[i]}),
			)
		}
	}

	// Caps: the rounded-rectangle outlines are convex, fan from the center
	bottom := rings[0]
	bottomCenter := geometry.NewVector3(0, 0, 0)
	for i := 0; i < len(bottom); i++ {
		j := (i + 1) % len(bottom)
		polygons = append(polygons, newPolygon([]geometry.Vector3{bottomCenter, bottom[j], bottom[i]}))
	}
	topRing := rings[len(rings)-1]
	topCenter := geometry.NewVector3(0, 0, height)
	for i := 0; i < len(topRing); i++ {
		j := (i + 1) % len(topRing)
		polygons = append(polygons, newPolygon([]geometry.Vector3{topCenter, topRing[i], topRing[j]}))
	}

	return fromPolygons(polygons), nil
}

// roundedRectRing returns the closed outline of a length × width rounded
// rectangle at height z, inset on all sides, ordered counter-clockwise seen
// from +Z. Corner arc centers are fixed at the uninset corner radius so the
// effective corner radius is vertRadius - inset.
func roundedRectRing(ctx *Context, length, width, vertRadius, inset, z float64) []geometry.Vector3 {
	cs := ctx.CornerSegments
	cx := length/2.0 - vertRadius
	cy := width/2.0 - vertRadius
	radius := vertRadius - inset

	corners := []struct {
		x, y  float64
		start float64
	}{
		{cx, cy, 0},
		{-cx, cy, math.Pi / 2.0},
		{-cx, -cy, math.Pi},
		{cx, -cy, 3.0 * math.Pi / 2.0},
	}

	ring := make([]geometry.Vector3, 0, 4*(cs+1))
	for _, corner := range corners {
		for i := 0; i <= cs; i++ {
			angle := corner.start + (math.Pi/2.0)*float64(i)/float64(cs)
			ring = append(ring, geometry.NewVector3(
				corner.x+radius*math.Cos(angle),
				corner.y+radius*math.Sin(angle),
				z,
			))
		}
	}
	return ring
}
