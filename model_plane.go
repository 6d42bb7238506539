package noise

// Plane maps an (x, z) position on the y=0 plane onto a generator module.
// It is the model behind flat heightmaps and tileable textures.
type Plane struct {
	generator Module
}

// NewPlane creates a plane model with no generator bound.
func NewPlane() *Plane {
	return &Plane{}
}

// SetGenerator binds the generator module sampled on the plane. The plane
// does not take ownership; nil unbinds.
func (p *Plane) SetGenerator(generator Module) { p.generator = generator }

// Generator returns the bound generator, or nil if unbound.
func (p *Plane) Generator() Module { return p.generator }

// GetValue samples the generator at (x, 0, z). Fails with an
// *UnboundSourceError if no generator is bound.
func (p *Plane) GetValue(x, z float64) (float64, error) {
	if p.generator == nil {
		return 0, &UnboundSourceError{Module: "plane", Slot: 0}
	}
	return p.generator.GetValue(x, 0, z)
}

// Validate checks that a generator is bound and validates the graph
// beneath it.
func (p *Plane) Validate() error {
	if p.generator == nil {
		return &UnboundSourceError{Module: "plane", Slot: 0}
	}
	return Validate(p.generator)
}
