package noise

import "math"

// FoldFunc combines two scalar values into one. Folds are applied to source
// values left to right, so non-commutative operators (Power) see the lower
// slot on the left.
type FoldFunc func(a, b float64) float64

// Combiner folds the outputs of a fixed number of source modules into a
// single value using a pure numeric operator. It performs no clamping or
// normalization: NaN and infinite source values flow straight through the
// fold per IEEE-754.
//
// The stock binary combiners (Add, Min, Max, Multiply, Power) are Combiners
// with arity 2; NewFold builds combiners of any fixed arity.
type Combiner struct {
	sourceSlots
	fold FoldFunc
}

// NewFold creates a combiner with the given display name and fixed arity
// that reduces its sources' values with fold, left to right. Arity must be
// at least 1; NewFold panics otherwise, since a zero-arity combiner has
// nothing to fold and indicates a programming error at the call site.
func NewFold(name string, arity int, fold FoldFunc) *Combiner {
	if arity < 1 {
		panic("noise: NewFold arity must be >= 1")
	}
	return &Combiner{sourceSlots: newSourceSlots(name, arity), fold: fold}
}

// NewAdd creates a binary combiner that sums its two sources.
func NewAdd() *Combiner {
	return NewFold("add", 2, func(a, b float64) float64 { return a + b })
}

// NewMin creates a binary combiner that takes the smaller of its two
// sources. NaN from either source propagates (math.Min semantics).
func NewMin() *Combiner {
	return NewFold("min", 2, math.Min)
}

// NewMax creates a binary combiner that takes the larger of its two
// sources. NaN from either source propagates (math.Max semantics).
func NewMax() *Combiner {
	return NewFold("max", 2, math.Max)
}

// NewMultiply creates a binary combiner that multiplies its two sources.
func NewMultiply() *Combiner {
	return NewFold("multiply", 2, func(a, b float64) float64 { return a * b })
}

// NewPower creates a binary combiner that raises source 0 to the power of
// source 1.
func NewPower() *Combiner {
	return NewFold("power", 2, math.Pow)
}

// GetValue evaluates every source at (x, y, z) in slot order and folds the
// results. Fails with an *UnboundSourceError naming the lowest unbound slot.
func (c *Combiner) GetValue(x, y, z float64) (float64, error) {
	src, err := c.boundSource(0)
	if err != nil {
		return 0, err
	}
	acc, err := src.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	for i := 1; i < c.SourceCount(); i++ {
		src, err := c.boundSource(i)
		if err != nil {
			return 0, err
		}
		v, err := src.GetValue(x, y, z)
		if err != nil {
			return 0, err
		}
		acc = c.fold(acc, v)
	}
	return acc, nil
}
