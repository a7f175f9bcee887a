package solid

// node is one node of a BSP tree built from the polygons of a closed surface.
// The tree supports the clipping operations the boolean algebra is built on.
type node struct {
	plane    *Plane
	front    *node
	back     *node
	polygons []Polygon
}

// newNode builds a BSP tree from a list of polygons
func newNode(polygons []Polygon) *node {
	n := &node{}
	if len(polygons) > 0 {
		n.build(polygons)
	}
	return n
}

// invert converts the tree to a representation of the complement solid
func (n *node) invert() {
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].flipped()
	}
	if n.plane != nil {
		flipped := n.plane.flipped()
		n.plane = &flipped
	}
	if n.front != nil {
		n.front.invert()
	}
	if n.back != nil {
		n.back.invert()
	}
	n.front, n.back = n.back, n.front
}

// clipPolygons removes all parts of the given polygons that lie inside the
// solid represented by this tree
func (n *node) clipPolygons(polygons []Polygon) []Polygon {
	if n.plane == nil {
		out := make([]Polygon, len(polygons))
		copy(out, polygons)
		return out
	}

	var frontPolys, backPolys []Polygon
	for _, poly := range polygons {
		n.plane.splitPolygon(poly, &frontPolys, &backPolys, &frontPolys, &backPolys)
	}

	if n.front != nil {
		frontPolys = n.front.clipPolygons(frontPolys)
	}
	if n.back != nil {
		backPolys = n.back.clipPolygons(backPolys)
	} else {
		backPolys = nil
	}

	return append(frontPolys, backPolys...)
}

// clipTo removes all polygons in this tree that lie inside the other solid
func (n *node) clipTo(other *node) {
	n.polygons = other.clipPolygons(n.polygons)
	if n.front != nil {
		n.front.clipTo(other)
	}
	if n.back != nil {
		n.back.clipTo(other)
	}
}

// allPolygons collects every polygon stored in the tree
func (n *node) allPolygons() []Polygon {
	polygons := make([]Polygon, len(n.polygons))
	copy(polygons, n.polygons)
	if n.front != nil {
		polygons = append(polygons, n.front.allPolygons()...)
	}
	if n.back != nil {
		polygons = append(polygons, n.back.allPolygons()...)
	}
	return polygons
}

// build inserts polygons into the tree, splitting them as needed. The first
// polygon's plane is used as the splitting plane of a fresh node.
func (n *node) build(polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}
	if n.plane == nil {
		plane := polygons[0].Plane
		n.plane = &plane
	}

	var frontPolys, backPolys []Polygon
	for _, poly := range polygons {
		n.plane.splitPolygon(poly, &n.polygons, &n.polygons, &frontPolys, &backPolys)
	}

	if len(frontPolys) > 0 {
		if n.front == nil {
			n.front = &node{}
		}
		n.front.build(frontPolys)
	}
	if len(backPolys) > 0 {
		if n.back == nil {
			n.back = &node{}
		}
		n.back.build(backPolys)
	}
}
