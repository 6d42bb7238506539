package noise

import "errors"

// Clamp restricts its source's output to [lower, upper]. Values inside the
// range pass through unchanged; NaN passes through (it compares false
// against both bounds).
type Clamp struct {
	sourceSlots
	lower float64
	upper float64
}

// Default clamp bounds, matching the natural output range of the coherent
// generators.
const (
	DefaultClampLowerBound = -1.0
	DefaultClampUpperBound = 1.0
)

// NewClamp creates a clamp with the default bounds [-1, 1].
func NewClamp() *Clamp {
	return &Clamp{
		sourceSlots: newSourceSlots("clamp", 1),
		lower:       DefaultClampLowerBound,
		upper:       DefaultClampUpperBound,
	}
}

// SetBounds sets the clamp range. Fails if lower > upper.
func (c *Clamp) SetBounds(lower, upper float64) error {
	if lower > upper {
		return errors.New("noise: clamp: lower bound exceeds upper bound")
	}
	c.lower = lower
	c.upper = upper
	return nil
}

// LowerBound returns the lower clamp bound.
func (c *Clamp) LowerBound() float64 { return c.lower }

// UpperBound returns the upper clamp bound.
func (c *Clamp) UpperBound() float64 { return c.upper }

// GetValue evaluates the source and clamps the result to the bounds.
func (c *Clamp) GetValue(x, y, z float64) (float64, error) {
	src, err := c.boundSource(0)
	if err != nil {
		return 0, err
	}
	v, err := src.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	if v < c.lower {
		return c.lower, nil
	}
	if v > c.upper {
		return c.upper, nil
	}
	return v, nil
}
