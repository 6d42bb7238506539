package noise

// Const is a generator that outputs the same value everywhere. It requires
// no sources and is useful as a graph leaf, a bias term for combiners, and
// a stand-in source in tests.
type Const struct {
	sourceSlots
	value float64
}

// NewConst creates a constant-value generator.
func NewConst(value float64) *Const {
	return &Const{sourceSlots: newSourceSlots("const", 0), value: value}
}

// SetValue changes the output value.
func (c *Const) SetValue(value float64) { c.value = value }

// Value returns the output value.
func (c *Const) Value() float64 { return c.value }

// GetValue returns the constant value; the coordinate is ignored.
func (c *Const) GetValue(x, y, z float64) (float64, error) {
	return c.value, nil
}
