// Package enclosure builds the bow thruster controller case: a filleted
// rectangular shell, hollowed to the board footprint, with four mounting
// standoffs and wire-passage slots, exported as a binary STL mesh.
package enclosure

import (
	"fmt"

	"github.com/philipparndt/encase/pkg/geometry"
	"github.com/philipparndt/encase/pkg/solid"
	"github.com/philipparndt/encase/pkg/stl"
)

// cutClearance is how far cutting and embedded solids overshoot the faces
// they mate with, so the boolean tree never sees coincident planes. It never
// changes the resulting geometry.
const cutClearance = 1.0

// Build constructs the enclosure solid. The steps are order-dependent: the
// cavity cut, the standoff unions and the slot cuts all operate on the shell
// produced by the steps before them.
func Build(ctx *solid.Context, dims Dimensions) (*solid.Solid, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dimensions: %w", err)
	}

	outerLength := dims.OuterLength()
	outerWidth := dims.OuterWidth()
	outerHeight := dims.OuterHeight()

	// Outer shell, based at z=0 and centered in XY, with rounded vertical
	// and horizontal edges
	shell, err := solid.FilletedBox(ctx, outerLength, outerWidth, outerHeight,
		dims.VerticalFillet, dims.HorizontalFillet)
	if err != nil {
		return nil, fmt.Errorf("outer shell: %w", err)
	}

	// Hollow the interior down to a floor of LidThickness. The cavity cut
	// runs past the open top.
	cavity, err := solid.Box(
		geometry.NewVector3(-dims.BoardLength/2.0, -dims.BoardWidth/2.0, dims.LidThickness),
		geometry.NewVector3(dims.BoardLength/2.0, dims.BoardWidth/2.0, outerHeight+cutClearance),
	)
	if err != nil {
		return nil, fmt.Errorf("cavity: %w", err)
	}
	shell = shell.Cut(cavity)

	// Four mounting standoffs, mirrored across both midplanes. The posts
	// are embedded into the floor so they fuse with it; their tops end at
	// the board seating height.
	embed := dims.LidThickness / 2.0
	postX := outerLength/2.0 - dims.WallThickness - dims.MountOffset
	postY := outerWidth/2.0 - dims.WallThickness - dims.MountOffset
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			post, err := solid.Cylinder(ctx, dims.PostDiameter, dims.StandoffHeight+embed)
			if err != nil {
				return nil, fmt.Errorf("standoff post: %w", err)
			}
			post = post.Translate(geometry.NewVector3(
				sx*postX,
				sy*postY,
				dims.LidThickness-embed,
			))
			shell = shell.Union(post)
		}
	}

	// Wire slots through both long walls, centered at the vertical
	// midpoint of the clearance above the board
	slotMid := dims.CavityMidHeight()
	for _, xCenter := range []float64{-dims.SlotXOffset, dims.SlotXOffset} {
		for _, sy := range []float64{-1, 1} {
			inner := dims.BoardWidth / 2.0
			yMin := inner - cutClearance
			yMax := inner + dims.SlotDepth + cutClearance
			if sy < 0 {
				yMin, yMax = -yMax, -yMin
			}
			slot, err := solid.Box(
				geometry.NewVector3(xCenter-dims.SlotWidth/2.0, yMin, slotMid-dims.SlotHeight/2.0),
				geometry.NewVector3(xCenter+dims.SlotWidth/2.0, yMax, slotMid+dims.SlotHeight/2.0),
			)
			if err != nil {
				return nil, fmt.Errorf("long-side slot: %w", err)
			}
			shell = shell.Cut(slot)
		}
	}

	// Two taller slots through the short wall at the connector end. Their
	// vertical extent runs out through the open top.
	for _, yCenter := range []float64{-dims.SideSlotYOffset, dims.SideSlotYOffset} {
		inner := dims.BoardLength / 2.0
		slot, err := solid.Box(
			geometry.NewVector3(inner-cutClearance, yCenter-dims.SlotHeight/2.0, slotMid-dims.SlotWidth/2.0),
			geometry.NewVector3(inner+dims.SlotDepth+cutClearance, yCenter+dims.SlotHeight/2.0, slotMid+dims.SlotWidth/2.0),
		)
		if err != nil {
			return nil, fmt.Errorf("short-side slot: %w", err)
		}
		shell = shell.Cut(slot)
	}

	return shell, nil
}

// Generate builds the enclosure and writes it to path as a binary STL file,
// returning the exported model
func Generate(ctx *solid.Context, dims Dimensions, path string) (*stl.Model, error) {
	shell, err := Build(ctx, dims)
	if err != nil {
		return nil, err
	}

	model := shell.Mesh("bow_thruster_enclosure")
	if err := stl.Write(model, path); err != nil {
		return nil, fmt.Errorf("failed to export STL: %w", err)
	}
	return model, nil
}
