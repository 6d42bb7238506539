package noise

import "github.com/ojrac/opensimplex-go"

// Simplex is a coherent-noise generator backed by
// github.com/ojrac/opensimplex-go. It requires no sources and produces
// values in roughly [-1, 1] (or [0, 1] for the normalized variant).
type Simplex struct {
	sourceSlots
	seed       int64
	frequency  float64
	normalized bool
	gen        opensimplex.Noise
}

// Default Simplex parameters.
const (
	DefaultSimplexSeed      = 0
	DefaultSimplexFrequency = 1.0
)

// NewSimplex creates a simplex generator with the default parameters.
func NewSimplex() *Simplex {
	s := &Simplex{
		sourceSlots: newSourceSlots("simplex", 0),
		seed:        DefaultSimplexSeed,
		frequency:   DefaultSimplexFrequency,
	}
	s.rebuild()
	return s
}

// NewSimplexNormalized creates a simplex generator whose output is remapped
// to [0, 1], which suits heightmap consumers that expect non-negative
// values.
func NewSimplexNormalized() *Simplex {
	s := NewSimplex()
	s.normalized = true
	s.rebuild()
	return s
}

func (s *Simplex) rebuild() {
	if s.normalized {
		s.gen = opensimplex.NewNormalized(s.seed)
	} else {
		s.gen = opensimplex.New(s.seed)
	}
}

// SetSeed reseeds the generator.
func (s *Simplex) SetSeed(seed int64) {
	s.seed = seed
	s.rebuild()
}

// Seed returns the generator seed.
func (s *Simplex) Seed() int64 { return s.seed }

// SetFrequency sets the coordinate scale applied before sampling.
func (s *Simplex) SetFrequency(frequency float64) { s.frequency = frequency }

// Frequency returns the coordinate scale.
func (s *Simplex) Frequency() float64 { return s.frequency }

// Normalized reports whether output is remapped to [0, 1].
func (s *Simplex) Normalized() bool { return s.normalized }

// GetValue samples the noise at the frequency-scaled coordinate.
func (s *Simplex) GetValue(x, y, z float64) (float64, error) {
	f := s.frequency
	return s.gen.Eval3(x*f, y*f, z*f), nil
}
