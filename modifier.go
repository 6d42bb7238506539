package noise

import "math"

// Modifier applies a pure unary function to the output of its single
// source. Like combiners, modifiers never inspect the value: NaN and
// infinities pass through the wrapped function per IEEE-754.
type Modifier struct {
	sourceSlots
	apply func(float64) float64
}

// NewModifier creates a modifier with the given display name that
// transforms its source's output with apply.
func NewModifier(name string, apply func(float64) float64) *Modifier {
	return &Modifier{sourceSlots: newSourceSlots(name, 1), apply: apply}
}

// NewAbs creates a modifier that outputs the absolute value of its source.
func NewAbs() *Modifier {
	return NewModifier("abs", math.Abs)
}

// NewInvert creates a modifier that negates its source.
func NewInvert() *Modifier {
	return NewModifier("invert", func(v float64) float64 { return -v })
}

// GetValue evaluates the source at (x, y, z) and applies the transform.
func (m *Modifier) GetValue(x, y, z float64) (float64, error) {
	src, err := m.boundSource(0)
	if err != nil {
		return 0, err
	}
	v, err := src.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	return m.apply(v), nil
}
