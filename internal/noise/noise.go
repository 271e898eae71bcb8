// Package noise composes seeded smooth-noise octaves into a scalar height function.
package noise

import (
	"errors"
	"fmt"
	"math"
)

// Settings errors.
var (
	ErrInvalidSettings = errors.New("invalid noise settings")
)

// Algorithm selects the smooth-noise backend used by every octave.
type Algorithm string

// Supported backends.
const (
	Simplex Algorithm = "simplex" // fBm over OpenSimplex
	Perlin  Algorithm = "perlin"  // aquilax/go-perlin
)

// DefaultDetail is the number of fractal layers inside one octave.
const DefaultDetail = 6

// Octave describes one noise layer of the height function.
type Octave struct {
	SeedOffset uint32  // added to the field seed
	Divisor    float64 // wavelength divisor applied to grid coordinates
	Amplitude  float64 // height multiplier
}

// Settings configures a Field.
type Settings struct {
	Algorithm Algorithm
	Detail    int // fractal layers per octave
	Octaves   []Octave
}

// DefaultOctaves returns the stock octave table: a broad low-frequency swell
// carrying most of the height, with progressively finer detail on top.
func DefaultOctaves() []Octave {
	return []Octave{
		{SeedOffset: 0, Divisor: 50, Amplitude: 2.5},
		{SeedOffset: 1, Divisor: 10, Amplitude: 1.5},
		{SeedOffset: 2, Divisor: 5, Amplitude: 0.5},
		{SeedOffset: 3, Divisor: 75, Amplitude: 5.5},
		{SeedOffset: 4, Divisor: 100, Amplitude: 20.5},
	}
}

// DefaultSettings returns simplex noise with the stock octave table.
func DefaultSettings() Settings {
	return Settings{
		Algorithm: Simplex,
		Detail:    DefaultDetail,
		Octaves:   DefaultOctaves(),
	}
}

// Validate checks the settings without building any noise source.
func (s Settings) Validate() error {
	switch s.Algorithm {
	case Simplex, Perlin:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidSettings, s.Algorithm)
	}
	if s.Detail < 1 {
		return fmt.Errorf("%w: detail must be at least 1, got %d", ErrInvalidSettings, s.Detail)
	}
	if len(s.Octaves) == 0 {
		return fmt.Errorf("%w: no octaves", ErrInvalidSettings)
	}
	for i, o := range s.Octaves {
		if !(o.Divisor > 0) || math.IsInf(o.Divisor, 0) {
			return fmt.Errorf("%w: octave %d divisor %v", ErrInvalidSettings, i, o.Divisor)
		}
		if math.IsNaN(o.Amplitude) || math.IsInf(o.Amplitude, 0) {
			return fmt.Errorf("%w: octave %d amplitude %v", ErrInvalidSettings, i, o.Amplitude)
		}
	}
	return nil
}

// source is a seeded 2D smooth-noise function returning values in about [-1, 1].
type source interface {
	Noise2D(x, y float64) float64
}

type sampler struct {
	src       source
	divisor   float64
	amplitude float64
}

// Field is a deterministic height function of integer grid coordinates.
// It holds no mutable state and is safe for concurrent use.
type Field struct {
	seed     uint32
	samplers []sampler
}

// NewField builds the octave samplers for seed.
func NewField(seed uint32, s Settings) (*Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		seed:     seed,
		samplers: make([]sampler, 0, len(s.Octaves)),
	}
	for _, o := range s.Octaves {
		octaveSeed := seed + o.SeedOffset // wraps like the original u32 seed arithmetic
		var src source
		switch s.Algorithm {
		case Perlin:
			src = newPerlin(octaveSeed, s.Detail)
		default:
			src = newFractal(octaveSeed, s.Detail)
		}
		f.samplers = append(f.samplers, sampler{
			src:       src,
			divisor:   o.Divisor,
			amplitude: o.Amplitude,
		})
	}
	return f, nil
}

// NewDefaultField is NewField with DefaultSettings.
func NewDefaultField(seed uint32) *Field {
	f, err := NewField(seed, DefaultSettings())
	if err != nil {
		// DefaultSettings always validates.
		panic(err)
	}
	return f
}

// Seed returns the base seed of the field.
func (f *Field) Seed() uint32 {
	return f.seed
}

// Height returns the summed octave height at grid coordinate (x, z).
func (f *Field) Height(x, z int) float32 {
	var h float64
	for _, s := range f.samplers {
		h += s.src.Noise2D(float64(x)/s.divisor, float64(z)/s.divisor) * s.amplitude
	}
	return float32(h)
}

// MaxAmplitude returns the sum of octave amplitudes, a bound on |Height|
// for backends that stay within [-1, 1].
func (f *Field) MaxAmplitude() float64 {
	var sum float64
	for _, s := range f.samplers {
		sum += math.Abs(s.amplitude)
	}
	return sum
}
