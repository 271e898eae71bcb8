package noise

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	lacunarity  = 2.0
	persistence = 0.5

	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// fractal sums layers of OpenSimplex noise at doubling frequency and halving
// amplitude, normalized back to about [-1, 1].
type fractal struct {
	layers []opensimplex.Noise
	norm   float64
}

func newFractal(seed uint32, detail int) *fractal {
	f := &fractal{layers: make([]opensimplex.Noise, detail)}
	amp, total := 1.0, 0.0
	for i := range f.layers {
		f.layers[i] = opensimplex.New(int64(layerSeed(seed, i)))
		total += amp
		amp *= persistence
	}
	f.norm = 1 / total
	return f
}

func (f *fractal) Noise2D(x, y float64) float64 {
	var sum float64
	freq, amp := 1.0, 1.0
	for _, layer := range f.layers {
		sum += layer.Eval2(x*freq, y*freq) * amp
		freq *= lacunarity
		amp *= persistence
	}
	return sum * f.norm
}

func newPerlin(seed uint32, detail int) *perlin.Perlin {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, int32(detail), int64(seed))
}
