package noise

// Line maps a 1D position along a segment in 3D space onto a generator
// module. With attenuation enabled (the default) the output is tapered by
// the parabola 4p(1-p), which is zero at both endpoints and 1 at the
// midpoint, so adjacent segments join without discontinuities.
//
// Line is a projection, not a Module: it exposes its own one-parameter
// GetValue and holds a single non-owning generator reference.
type Line struct {
	generator  Module
	x0, y0, z0 float64
	x1, y1, z1 float64
	attenuate  bool
}

// NewLine creates a line model spanning (0,0,0) to (1,1,1) with
// attenuation enabled and no generator bound.
func NewLine() *Line {
	return &Line{x1: 1, y1: 1, z1: 1, attenuate: true}
}

// SetGenerator binds the generator module sampled along the line. The line
// does not take ownership; nil unbinds.
func (l *Line) SetGenerator(generator Module) { l.generator = generator }

// Generator returns the bound generator, or nil if unbound.
func (l *Line) Generator() Module { return l.generator }

// SetStartPoint sets the segment start (the p=0 end).
func (l *Line) SetStartPoint(x, y, z float64) {
	l.x0, l.y0, l.z0 = x, y, z
}

// StartPoint returns the segment start.
func (l *Line) StartPoint() (x, y, z float64) { return l.x0, l.y0, l.z0 }

// SetEndPoint sets the segment end (the p=1 end).
func (l *Line) SetEndPoint(x, y, z float64) {
	l.x1, l.y1, l.z1 = x, y, z
}

// EndPoint returns the segment end.
func (l *Line) EndPoint() (x, y, z float64) { return l.x1, l.y1, l.z1 }

// SetAttenuate enables or disables endpoint tapering.
func (l *Line) SetAttenuate(attenuate bool) { l.attenuate = attenuate }

// Attenuate reports whether endpoint tapering is enabled.
func (l *Line) Attenuate() bool { return l.attenuate }

// GetValue samples the generator at position p along the segment. With
// attenuation off, p outside [0, 1] extrapolates along the infinite line
// through the segment. Fails with an *UnboundSourceError if no generator
// is bound.
func (l *Line) GetValue(p float64) (float64, error) {
	if l.generator == nil {
		return 0, &UnboundSourceError{Module: "line", Slot: 0}
	}
	x := lerp(l.x0, l.x1, p)
	y := lerp(l.y0, l.y1, p)
	z := lerp(l.z0, l.z1, p)
	v, err := l.generator.GetValue(x, y, z)
	if err != nil {
		return 0, err
	}
	if l.attenuate {
		v *= 4 * p * (1 - p)
	}
	return v, nil
}

// Validate checks that a generator is bound and validates the graph
// beneath it.
func (l *Line) Validate() error {
	if l.generator == nil {
		return &UnboundSourceError{Module: "line", Slot: 0}
	}
	return Validate(l.generator)
}
