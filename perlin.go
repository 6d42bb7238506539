package noise

import "github.com/aquilax/go-perlin"

// Perlin is a coherent-noise generator producing smooth pseudo-random
// values in roughly [-1, 1], backed by github.com/aquilax/go-perlin. It
// requires no sources.
//
// Alpha controls the weight falloff between octaves (smaller is noisier),
// Beta the harmonic frequency scaling, Octaves how many layers are summed.
// The same seed and parameters always reproduce the same field.
type Perlin struct {
	sourceSlots
	alpha     float64
	beta      float64
	octaves   int32
	seed      int64
	frequency float64
	gen       *perlin.Perlin
}

// Default Perlin parameters.
const (
	DefaultPerlinAlpha     = 2.0
	DefaultPerlinBeta      = 2.0
	DefaultPerlinOctaves   = 3
	DefaultPerlinSeed      = 0
	DefaultPerlinFrequency = 1.0
)

// NewPerlin creates a Perlin generator with the default parameters.
func NewPerlin() *Perlin {
	p := &Perlin{
		sourceSlots: newSourceSlots("perlin", 0),
		alpha:       DefaultPerlinAlpha,
		beta:        DefaultPerlinBeta,
		octaves:     DefaultPerlinOctaves,
		seed:        DefaultPerlinSeed,
		frequency:   DefaultPerlinFrequency,
	}
	p.rebuild()
	return p
}

func (p *Perlin) rebuild() {
	p.gen = perlin.NewPerlin(p.alpha, p.beta, p.octaves, p.seed)
}

// SetAlpha sets the octave weight falloff.
func (p *Perlin) SetAlpha(alpha float64) {
	p.alpha = alpha
	p.rebuild()
}

// Alpha returns the octave weight falloff.
func (p *Perlin) Alpha() float64 { return p.alpha }

// SetBeta sets the harmonic frequency scaling.
func (p *Perlin) SetBeta(beta float64) {
	p.beta = beta
	p.rebuild()
}

// Beta returns the harmonic frequency scaling.
func (p *Perlin) Beta() float64 { return p.beta }

// SetOctaves sets the number of summed noise layers.
func (p *Perlin) SetOctaves(octaves int32) {
	p.octaves = octaves
	p.rebuild()
}

// Octaves returns the number of summed noise layers.
func (p *Perlin) Octaves() int32 { return p.octaves }

// SetSeed reseeds the generator.
func (p *Perlin) SetSeed(seed int64) {
	p.seed = seed
	p.rebuild()
}

// Seed returns the generator seed.
func (p *Perlin) Seed() int64 { return p.seed }

// SetFrequency sets the coordinate scale applied before sampling.
func (p *Perlin) SetFrequency(frequency float64) { p.frequency = frequency }

// Frequency returns the coordinate scale.
func (p *Perlin) Frequency() float64 { return p.frequency }

// GetValue samples the noise at the frequency-scaled coordinate.
func (p *Perlin) GetValue(x, y, z float64) (float64, error) {
	f := p.frequency
	return p.gen.Noise3D(x*f, y*f, z*f), nil
}
