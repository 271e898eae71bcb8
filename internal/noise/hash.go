package noise

// hash32 is a murmur-style finalizer: small input changes flip about half
// of the output bits.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// layerSeed derives the seed of fractal layer i of an octave.
// Octave seeds are consecutive integers, so plain seed+i would make layer
// i+1 of one octave reuse the source of layer i of the next.
func layerSeed(seed uint32, layer int) uint32 {
	if layer == 0 {
		return seed
	}
	return hash32(seed ^ (uint32(layer) * 0x9e3779b1))
}
