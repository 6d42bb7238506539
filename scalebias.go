package noise

// ScaleBias applies a linear transform to its source's output:
// value*scale + bias. The usual use is remapping a generator's [-1, 1]
// range onto whatever range a consumer expects.
type ScaleBias struct {
	sourceSlots
	scale float64
	bias  float64
}

// Default linear-transform parameters (the identity transform).
const (
	DefaultScale = 1.0
	DefaultBias  = 0.0
)

// NewScaleBias creates a scale/bias module with the identity transform.
func NewScaleBias() *ScaleBias {
	return &ScaleBias{
		sourceSlots: newSourceSlots("scalebias", 1),
		scale:       DefaultScale,
		bias:        DefaultBias,
	}
}

// SetScale sets the multiplier applied to the source value.
func (s *ScaleBias) SetScale(scale float64) { s.scale = scale }

// Scale returns the multiplier.
func (s *ScaleBias) Scale() float64 { return s.scale }

// SetBias sets the offset added after scaling.
func (s *ScaleBias) SetBias(bias float64) { s.bias = bias }

// Bias returns the offset.
func (s *ScaleBias) Bias() float64 { return s.bias }

// GetValue evaluates the source and applies scale then bias.
func (s *ScaleBias) GetValue(x, y, z float64) (float64, error) {
	src, err := s.boundSource(0)
	if err != nil {
		return 0, err
	}
	v, err := src.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	return v*s.scale + s.bias, nil
}
