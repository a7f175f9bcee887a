// Package solid implements a small constructive solid geometry kernel.
//
// Solids are closed polygon surfaces. Boolean operations (union, cut) are
// performed by clipping the operands against BSP trees of each other and
// recombining the surviving surface, so each operation consumes its inputs
// only by value and returns a new solid.
package solid

import (
	"github.com/philipparndt/encase/pkg/geometry"
	"github.com/philipparndt/encase/pkg/stl"
)

// Solid represents a closed 3D region as a set of boundary polygons.
// Operations never modify the receiver; they return derived solids.
type Solid struct {
	polygons []Polygon
}

// fromPolygons wraps a polygon list in a Solid without copying
func fromPolygons(polygons []Polygon) *Solid {
	return &Solid{polygons: polygons}
}

// clonePolygons returns deep copies of the solid's polygons
func (s *Solid) clonePolygons() []Polygon {
	polygons := make([]Polygon, len(s.polygons))
	for i, p := range s.polygons {
		polygons[i] = p.clone()
	}
	return polygons
}

// PolygonCount returns the number of boundary polygons
func (s *Solid) PolygonCount() int {
	return len(s.polygons)
}

// Union returns the boolean union of the two solids
func (s *Solid) Union(other *Solid) *Solid {
	a := newNode(s.clonePolygons())
	b := newNode(other.clonePolygons())

	a.clipTo(b)
	b.clipTo(a)
	b.invert()
	b.clipTo(a)
	b.invert()
	a.build(b.allPolygons())

	return fromPolygons(a.allPolygons())
}

// Cut returns the boolean difference of the two solids: the region of the
// receiver that is not inside other
func (s *Solid) Cut(other *Solid) *Solid {
	a := newNode(s.clonePolygons())
	b := newNode(other.clonePolygons())

	a.invert()
	a.clipTo(b)
	b.clipTo(a)
	b.invert()
	b.clipTo(a)
	b.invert()
	a.build(b.allPolygons())
	a.invert()

	return fromPolygons(a.allPolygons())
}

// Translate returns the solid moved by offset
func (s *Solid) Translate(offset geometry.Vector3) *Solid {
	polygons := make([]Polygon, len(s.polygons))
	for i, p := range s.polygons {
		polygons[i] = p.translated(offset)
	}
	return fromPolygons(polygons)
}

// Triangles tessellates the boundary into triangles
func (s *Solid) Triangles() []geometry.Triangle {
	var triangles []geometry.Triangle
	for _, p := range s.polygons {
		triangles = append(triangles, p.triangulate()...)
	}
	return triangles
}

// BoundingBox returns the axis-aligned bounds of the solid
func (s *Solid) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range s.polygons {
		for _, v := range p.Vertices {
			bbox.Extend(v)
		}
	}
	return bbox
}

// Volume returns the enclosed volume, computed as the signed-tetrahedron sum
// over the boundary triangles
func (s *Solid) Volume() float64 {
	volume := 0.0
	for _, t := range s.Triangles() {
		volume += t.SignedVolume()
	}
	return volume
}

// Mesh tessellates the solid into a named STL model
func (s *Solid) Mesh(name string) *stl.Model {
	model := stl.NewModel(name)
	for _, t := range s.Triangles() {
		model.AddTriangle(t)
	}
	return model
}
