package noise

import "math"

// Cylinder maps an (angle, height) position on the surface of a unit-radius
// cylinder of infinite height, centered at the origin, onto a generator
// module. The cylinder's axis is the y axis; angles are in degrees.
type Cylinder struct {
	generator Module
}

// NewCylinder creates a cylinder model with no generator bound.
func NewCylinder() *Cylinder {
	return &Cylinder{}
}

// SetGenerator binds the generator module sampled on the surface. The
// cylinder does not take ownership; nil unbinds.
func (c *Cylinder) SetGenerator(generator Module) { c.generator = generator }

// Generator returns the bound generator, or nil if unbound.
func (c *Cylinder) Generator() Module { return c.generator }

// GetValue samples the generator on the cylinder surface at the given
// angular position (degrees) and height. Fails with an
// *UnboundSourceError if no generator is bound.
func (c *Cylinder) GetValue(angle, height float64) (float64, error) {
	if c.generator == nil {
		return 0, &UnboundSourceError{Module: "cylinder", Slot: 0}
	}
	rad := degToRad(angle)
	x := math.Cos(rad)
	y := height
	z := math.Sin(rad)
	return c.generator.GetValue(x, y, z)
}

// Validate checks that a generator is bound and validates the graph
// beneath it.
func (c *Cylinder) Validate() error {
	if c.generator == nil {
		return &UnboundSourceError{Module: "cylinder", Slot: 0}
	}
	return Validate(c.generator)
}
