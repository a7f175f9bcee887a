package enclosure

import (
	"fmt"
	"math"
)

// OutputFile is the fixed path the generated mesh is written to, relative to
// the working directory. It is overwritten on each run.
const OutputFile = "bow_thruster_enclosure_final.stl"

// Dimensions holds every length the enclosure is built from, in millimeters.
// The outer envelope is derived, never stored.
type Dimensions struct {
	// Board footprint; the cavity matches it exactly
	BoardLength float64
	BoardWidth  float64

	// Vertical stack: standoff posts, clearance above the board, floor
	StandoffHeight float64
	InternalHeight float64
	LidThickness   float64
	WallThickness  float64

	// Edge rounding of the outer shell
	VerticalFillet   float64
	HorizontalFillet float64

	// Mounting standoffs, inset from the cavity corners
	MountOffset  float64
	PostDiameter float64

	// Wire-passage slots
	SlotWidth       float64
	SlotHeight      float64
	SlotDepth       float64
	SlotXOffset     float64
	SideSlotYOffset float64
}

// Default returns the dimensions of the bow thruster controller enclosure
func Default() Dimensions {
	return Dimensions{
		BoardLength:      76.2,
		BoardWidth:       50.8,
		StandoffHeight:   3.175,
		InternalHeight:   25.4,
		LidThickness:     3.0,
		WallThickness:    3.0,
		VerticalFillet:   3.0,
		HorizontalFillet: 1.5,
		MountOffset:      3.5,
		PostDiameter:     6.0,
		SlotWidth:        30.0,
		SlotHeight:       10.0,
		SlotDepth:        3.0,
		SlotXOffset:      20.0,
		SideSlotYOffset:  15.0,
	}
}

// OuterLength returns the outer envelope length: board plus two walls
func (d Dimensions) OuterLength() float64 {
	return d.BoardLength + 2.0*d.WallThickness
}

// OuterWidth returns the outer envelope width: board plus two walls
func (d Dimensions) OuterWidth() float64 {
	return d.BoardWidth + 2.0*d.WallThickness
}

// OuterHeight returns the outer envelope height: floor, standoffs and the
// clearance above the board
func (d Dimensions) OuterHeight() float64 {
	return d.StandoffHeight + d.InternalHeight + d.LidThickness
}

// CavityMidHeight returns the Z coordinate the slot centers sit at: the
// vertical midpoint of the clearance above the standoffs
func (d Dimensions) CavityMidHeight() float64 {
	return d.LidThickness + d.StandoffHeight + d.InternalHeight/2.0
}

// Validate checks that the dimensions describe a buildable enclosure.
// Unset slot dimensions are rejected here, before any geometry is built.
func (d Dimensions) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"board length", d.BoardLength},
		{"board width", d.BoardWidth},
		{"standoff height", d.StandoffHeight},
		{"internal height", d.InternalHeight},
		{"lid thickness", d.LidThickness},
		{"wall thickness", d.WallThickness},
		{"vertical fillet", d.VerticalFillet},
		{"horizontal fillet", d.HorizontalFillet},
		{"mount offset", d.MountOffset},
		{"post diameter", d.PostDiameter},
		{"slot width", d.SlotWidth},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %g", p.name, p.value)
		}
	}

	if d.SlotHeight <= 0 {
		return fmt.Errorf("slot height is not set")
	}
	if d.SlotDepth <= 0 {
		return fmt.Errorf("slot depth is not set")
	}
	if d.SlotDepth < d.WallThickness {
		return fmt.Errorf("slot depth %g does not reach through the %g wall", d.SlotDepth, d.WallThickness)
	}

	if d.HorizontalFillet >= d.VerticalFillet {
		return fmt.Errorf("horizontal fillet %g must be smaller than vertical fillet %g",
			d.HorizontalFillet, d.VerticalFillet)
	}
	if 2.0*d.VerticalFillet >= math.Min(d.OuterLength(), d.OuterWidth()) {
		return fmt.Errorf("vertical fillet %g too large for the outer footprint", d.VerticalFillet)
	}
	if 2.0*d.HorizontalFillet >= d.OuterHeight() {
		return fmt.Errorf("horizontal fillet %g too large for the outer height", d.HorizontalFillet)
	}

	if d.SlotXOffset+d.SlotWidth/2.0 >= d.BoardLength/2.0 {
		return fmt.Errorf("long-side slots at ±%g × %g wide exceed the cavity length", d.SlotXOffset, d.SlotWidth)
	}
	if d.SideSlotYOffset+d.SlotHeight/2.0 >= d.BoardWidth/2.0 {
		return fmt.Errorf("short-side slots at ±%g × %g wide exceed the cavity width", d.SideSlotYOffset, d.SlotHeight)
	}
	if d.SlotHeight >= d.InternalHeight {
		return fmt.Errorf("slot height %g exceeds the internal clearance %g", d.SlotHeight, d.InternalHeight)
	}

	// Post centers sit MountOffset inside the cavity corners
	if d.PostDiameter/2.0 > d.MountOffset {
		return fmt.Errorf("⌀%g standoff posts at mount offset %g protrude into the wall",
			d.PostDiameter, d.MountOffset)
	}

	return nil
}
