package solid

import (
	"github.com/philipparndt/encase/pkg/geometry"
)

// planeEpsilon is the tolerance used when classifying points against a plane
const planeEpsilon = 1e-5

// Plane represents a plane in Hessian normal form: Normal·p = W
type Plane struct {
	Normal geometry.Vector3
	W      float64
}

// newPlane creates the plane through three non-collinear points
func newPlane(a, b, c geometry.Vector3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: normal, W: normal.Dot(a)}
}

// flipped returns the plane with reversed orientation
func (p Plane) flipped() Plane {
	return Plane{Normal: p.Normal.Mul(-1), W: -p.W}
}

// Point classification relative to a plane
const (
	coplanar = 0
	front    = 1
	back     = 2
	spanning = 3
)

// splitPolygon classifies poly against the plane and appends it, or the
// pieces it is split into, to the matching output lists. Coplanar polygons go
// to coplanarFront or coplanarBack depending on their facing.
func (p Plane) splitPolygon(poly Polygon, coplanarFront, coplanarBack, frontPolys, backPolys *[]Polygon) {
	polygonType := 0
	types := make([]int, len(poly.Vertices))

	for i, v := range poly.Vertices {
		t := p.Normal.Dot(v) - p.W
		vertexType := coplanar
		if t < -planeEpsilon {
			vertexType = back
		} else if t > planeEpsilon {
			vertexType = front
		}
		polygonType |= vertexType
		types[i] = vertexType
	}

	switch polygonType {
	case coplanar:
		if p.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}

	case front:
		*frontPolys = append(*frontPolys, poly)

	case back:
		*backPolys = append(*backPolys, poly)

	case spanning:
		var f, b []geometry.Vector3
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]

			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				b = append(b, vi)
			}
			if (ti | tj) == spanning {
				t := (p.W - p.Normal.Dot(vi)) / p.Normal.Dot(vj.Sub(vi))
				v := vi.Lerp(vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*frontPolys = append(*frontPolys, Polygon{Vertices: f, Plane: poly.Plane})
		}
		if len(b) >= 3 {
			*backPolys = append(*backPolys, Polygon{Vertices: b, Plane: poly.Plane})
		}
	}
}

// Polygon is a planar, convex vertex loop. Vertices are ordered
// counter-clockwise when viewed from the outside of the solid.
type Polygon struct {
	Vertices []geometry.Vector3
	Plane    Plane
}

// newPolygon creates a polygon and caches its supporting plane
func newPolygon(vertices []geometry.Vector3) Polygon {
	return Polygon{
		Vertices: vertices,
		Plane:    newPlane(vertices[0], vertices[1], vertices[2]),
	}
}

// flipped returns the polygon with reversed winding and plane
func (p Polygon) flipped() Polygon {
	reversed := make([]geometry.Vector3, len(p.Vertices))
	for i, v := range p.Vertices {
		reversed[len(p.Vertices)-1-i] = v
	}
	return Polygon{Vertices: reversed, Plane: p.Plane.flipped()}
}

// clone returns a deep copy of the polygon
func (p Polygon) clone() Polygon {
	vertices := make([]geometry.Vector3, len(p.Vertices))
	copy(vertices, p.Vertices)
	return Polygon{Vertices: vertices, Plane: p.Plane}
}

// translated returns the polygon moved by offset
func (p Polygon) translated(offset geometry.Vector3) Polygon {
	vertices := make([]geometry.Vector3, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = v.Add(offset)
	}
	return Polygon{
		Vertices: vertices,
		Plane: Plane{
			Normal: p.Plane.Normal,
			W:      p.Plane.W + p.Plane.Normal.Dot(offset),
		},
	}
}

// triangulate fans the convex polygon into triangles with the facet normal
// taken from the supporting plane
func (p Polygon) triangulate() []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(p.Vertices)-2)
	for i := 2; i < len(p.Vertices); i++ {
		triangles = append(triangles, geometry.NewTriangle(
			p.Plane.Normal,
			p.Vertices[0],
			p.Vertices[i-1],
			p.Vertices[i],
		))
	}
	return triangles
}
