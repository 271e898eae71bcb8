package terrain

import (
	"fmt"
	gomath "math"
)

// Band is the surface classification of a cell. It drives texture selection
// and marks road cells.
type Band uint8

// Band constants.
const (
	BandGrass Band = iota
	BandDryGrass
	BandGravel
	BandRock
	BandSnow
	BandRoad // only assigned by CarveRoad
)

// Bands lists every band in atlas order.
func Bands() []Band {
	return []Band{BandGrass, BandDryGrass, BandGravel, BandRock, BandSnow, BandRoad}
}

// String returns a human-readable band name.
func (b Band) String() string {
	switch b {
	case BandGrass:
		return "Grass"
	case BandDryGrass:
		return "DryGrass"
	case BandGravel:
		return "Gravel"
	case BandRock:
		return "Rock"
	case BandSnow:
		return "Snow"
	case BandRoad:
		return "Road"
	default:
		return fmt.Sprintf("Unknown(%d)", b)
	}
}

// Threshold assigns Band to heights strictly below Below.
type Threshold struct {
	Below float32
	Band  Band
}

// Classifier maps a height to a band with an ordered threshold table.
type Classifier struct {
	table    []Threshold
	fallback Band
}

// NewClassifier builds a classifier. Thresholds must be strictly ascending;
// heights at or above the last threshold get fallback.
func NewClassifier(table []Threshold, fallback Band) (*Classifier, error) {
	for i, t := range table {
		if gomath.IsNaN(float64(t.Below)) {
			return nil, fmt.Errorf("%w: threshold %d is NaN", ErrConfiguration, i)
		}
		if i > 0 && !(t.Below > table[i-1].Below) {
			return nil, fmt.Errorf("%w: thresholds not ascending at %d (%v <= %v)",
				ErrConfiguration, i, t.Below, table[i-1].Below)
		}
	}
	return &Classifier{
		table:    append([]Threshold(nil), table...),
		fallback: fallback,
	}, nil
}

// DefaultThresholds returns the stock height bands.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Below: -5, Band: BandGrass},
		{Below: 0, Band: BandDryGrass},
		{Below: 5, Band: BandGravel},
		{Below: 7, Band: BandRock},
	}
}

// DefaultClassifier classifies with DefaultThresholds and a Snow fallback.
func DefaultClassifier() *Classifier {
	c, _ := NewClassifier(DefaultThresholds(), BandSnow)
	return c
}

// Classify returns the band of height h. NaN heights get the fallback band.
func (c *Classifier) Classify(h float32) Band {
	for _, t := range c.table {
		if h < t.Below {
			return t.Band
		}
	}
	return c.fallback
}
