package noise

// Sphere maps a (latitude, longitude) position on the surface of a unit
// sphere centered at the origin onto a generator module. Both angles are
// in degrees; latitude 0 is the equator, +90 the north pole.
type Sphere struct {
	generator Module
}

// NewSphere creates a sphere model with no generator bound.
func NewSphere() *Sphere {
	return &Sphere{}
}

// SetGenerator binds the generator module sampled on the surface. The
// sphere does not take ownership; nil unbinds.
func (s *Sphere) SetGenerator(generator Module) { s.generator = generator }

// Generator returns the bound generator, or nil if unbound.
func (s *Sphere) Generator() Module { return s.generator }

// GetValue samples the generator on the sphere surface at the given
// latitude and longitude (degrees). Fails with an *UnboundSourceError if
// no generator is bound.
func (s *Sphere) GetValue(lat, lon float64) (float64, error) {
	if s.generator == nil {
		return 0, &UnboundSourceError{Module: "sphere", Slot: 0}
	}
	x, y, z := latLonToXYZ(lat, lon)
	return s.generator.GetValue(x, y, z)
}

// Validate checks that a generator is bound and validates the graph
// beneath it.
func (s *Sphere) Validate() error {
	if s.generator == nil {
		return &UnboundSourceError{Module: "sphere", Slot: 0}
	}
	return Validate(s.generator)
}
