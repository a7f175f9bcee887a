package solid

import "fmt"

// Context carries the tessellation settings used when primitives are turned
// into polygon meshes. It is passed explicitly to every constructor so that
// resolution is a property of the call, not of hidden package state, and so
// that two runs with the same context produce identical geometry.
type Context struct {
	// CornerSegments is the number of segments per 90° corner arc of a
	// filleted box outline.
	CornerSegments int
	// FilletSegments is the number of segments per 90° fillet profile arc
	// along the top and bottom edges of a filleted box.
	FilletSegments int
	// CircleSegments is the number of segments per full cylinder circle.
	CircleSegments int
}

// DefaultContext returns the tessellation settings used for production output
func DefaultContext() *Context {
	return &Context{
		CornerSegments: 8,
		FilletSegments: 4,
		CircleSegments: 32,
	}
}

// Validate checks that the context describes a usable tessellation
func (c *Context) Validate() error {
	if c == nil {
		return fmt.Errorf("nil context")
	}
	if c.CornerSegments < 1 {
		return fmt.Errorf("corner segments must be at least 1, got %d", c.CornerSegments)
	}
	if c.FilletSegments < 1 {
		return fmt.Errorf("fillet segments must be at least 1, got %d", c.FilletSegments)
	}
	if c.CircleSegments < 3 {
		return fmt.Errorf("circle segments must be at least 3, got %d", c.CircleSegments)
	}
	return nil
}
