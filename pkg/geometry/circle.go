package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircleXY fits a circle to a set of points lying in a plane of constant Z.
// It is used to recover the radius of cylindrical features (for example
// mounting standoffs) from tessellated geometry.
//
// Uses the 3-point determinant formula for calculating a circle through 3 points:
//   D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//   cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//   cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func FitCircleXY(points []Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}

	// Select 3 points with good coverage of the arc
	p1 := points[0]
	p2 := points[len(points)/2]
	p3 := points[len(points)-1]

	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	cx := (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D
	cy := (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D

	// Radius as distance from center to first point
	dx := x1 - cx
	dy := y1 - cy
	radius := math.Sqrt(dx*dx + dy*dy)

	// Fit quality: standard deviation of radial distances over all points
	var sumError float64
	for _, p := range points {
		dist := math.Hypot(p.X-cx, p.Y-cy)
		sumError += (dist - radius) * (dist - radius)
	}
	stdDev := math.Sqrt(sumError / float64(len(points)))

	return &CircleFit{
		Center: NewVector3(cx, cy, p1.Z),
		Radius: radius,
		StdDev: stdDev,
	}, nil
}
