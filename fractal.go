package noise

// Fractal sums octaves of its single source sampled at increasing
// frequencies and decreasing amplitudes (fractal Brownian motion). The sum
// is normalized by the total amplitude, so the output range matches the
// source's range regardless of octave count.
type Fractal struct {
	sourceSlots
	octaves     int
	lacunarity  float64
	persistence float64
}

// Default fractal parameters.
const (
	DefaultFractalOctaves     = 4
	DefaultFractalLacunarity  = 2.0
	DefaultFractalPersistence = 0.5
)

// NewFractal creates a fractal module with the default parameters.
func NewFractal() *Fractal {
	return &Fractal{
		sourceSlots: newSourceSlots("fractal", 1),
		octaves:     DefaultFractalOctaves,
		lacunarity:  DefaultFractalLacunarity,
		persistence: DefaultFractalPersistence,
	}
}

// SetOctaves sets the number of layers summed. Values below 1 are clamped
// to 1.
func (f *Fractal) SetOctaves(octaves int) {
	if octaves < 1 {
		octaves = 1
	}
	f.octaves = octaves
}

// Octaves returns the number of layers summed.
func (f *Fractal) Octaves() int { return f.octaves }

// SetLacunarity sets the per-octave frequency multiplier.
func (f *Fractal) SetLacunarity(lacunarity float64) { f.lacunarity = lacunarity }

// Lacunarity returns the per-octave frequency multiplier.
func (f *Fractal) Lacunarity() float64 { return f.lacunarity }

// SetPersistence sets the per-octave amplitude multiplier.
func (f *Fractal) SetPersistence(persistence float64) { f.persistence = persistence }

// Persistence returns the per-octave amplitude multiplier.
func (f *Fractal) Persistence() float64 { return f.persistence }

// GetValue sums octaves of the source and normalizes by total amplitude.
func (f *Fractal) GetValue(x, y, z float64) (float64, error) {
	src, err := f.boundSource(0)
	if err != nil {
		return 0, err
	}
	var sum, totalAmp float64
	freq := 1.0
	amp := 1.0
	for o := 0; o < f.octaves; o++ {
		v, err := src.GetValue(x*freq, y*freq, z*freq)
		if err != nil {
			return 0, err
		}
		sum += v * amp
		totalAmp += amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return sum / totalAmp, nil
}
