package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/encase/pkg/geometry"
	"github.com/philipparndt/encase/pkg/stl"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	Length     float64
	TriangleID int
}

// MeasurementResult contains various measurements of an STL model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeModel performs comprehensive analysis on an STL model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0),
	}

	result.Dimensions = result.BoundingBox.Size()

	// Collect all edges
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, triangle := range model.Triangles {
		edges := []struct {
			start, end geometry.Vector3
		}{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)

			edgeInfo := EdgeInfo{
				Start:      edge.start,
				End:        edge.end,
				Length:     length,
				TriangleID: i,
			}
			result.AllEdges = append(result.AllEdges, edgeInfo)

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// IsClosed reports whether every edge of the model is shared by exactly two
// triangles with opposite orientation. This holds for cleanly stitched
// tessellations; boolean results may contain T-vertices and fail the check
// while still being geometrically sealed.
func IsClosed(model *stl.Model) bool {
	type edgeKey struct {
		ax, ay, az float64
		bx, by, bz float64
	}
	counts := make(map[edgeKey]int)

	directed := func(a, b geometry.Vector3) {
		key := edgeKey{a.X, a.Y, a.Z, b.X, b.Y, b.Z}
		reverse := edgeKey{b.X, b.Y, b.Z, a.X, a.Y, a.Z}
		if counts[reverse] > 0 {
			counts[reverse]--
			if counts[reverse] == 0 {
				delete(counts, reverse)
			}
			return
		}
		counts[key]++
	}

	for _, t := range model.Triangles {
		directed(t.V1, t.V2)
		directed(t.V2, t.V3)
		directed(t.V3, t.V1)
	}

	return len(counts) == 0
}

// VerticesAtHeight returns all distinct vertices whose Z coordinate lies
// within tolerance of z. Useful for slicing cylindrical features out of a
// tessellation for measurement.
func VerticesAtHeight(model *stl.Model, z, tolerance float64) []geometry.Vector3 {
	seen := make(map[geometry.Vector3]bool)
	var vertices []geometry.Vector3

	for _, t := range model.Triangles {
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			if math.Abs(v.Z-z) <= tolerance && !seen[v] {
				seen[v] = true
				vertices = append(vertices, v)
			}
		}
	}
	return vertices
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindNearestVertex finds the vertex in the model nearest to a given point
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for _, triangle := range model.Triangles {
		vertices := []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for _, vertex := range vertices {
			distance := point.Distance(vertex)
			if distance < minDistance {
				minDistance = distance
				nearestVertex = vertex
			}
		}
	}

	return nearestVertex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
