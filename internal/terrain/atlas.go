package terrain

// TextureAtlas maps a band to its region of the terrain texture.
// Texture loading lives outside this package; only the lookup is needed here.
type TextureAtlas interface {
	Lookup(b Band) UVRect
}

// AtlasFunc adapts a plain function to TextureAtlas.
type AtlasFunc func(Band) UVRect

// Lookup calls f(b).
func (f AtlasFunc) Lookup(b Band) UVRect {
	return f(b)
}

// DefaultSectionSize is the pixel size of one square atlas section.
const DefaultSectionSize = 1024

// StripAtlas lays out one square section per band, left to right, in a single
// texture that is len(bands) sections wide and one section high.
type StripAtlas struct {
	sections    map[Band]int // band -> section index
	order       []Band
	sectionSize int
}

// NewStripAtlas builds a strip atlas for bands in the given order.
// Duplicate bands keep their first section. A non-positive sectionSize uses
// DefaultSectionSize.
func NewStripAtlas(bands []Band, sectionSize int) *StripAtlas {
	if sectionSize <= 0 {
		sectionSize = DefaultSectionSize
	}
	a := &StripAtlas{
		sections:    make(map[Band]int, len(bands)),
		sectionSize: sectionSize,
	}
	for _, b := range bands {
		if _, dup := a.sections[b]; dup {
			continue
		}
		a.sections[b] = len(a.order)
		a.order = append(a.order, b)
	}
	return a
}

// DefaultAtlas returns a strip atlas covering every band.
func DefaultAtlas() *StripAtlas {
	return NewStripAtlas(Bands(), DefaultSectionSize)
}

// Width returns the atlas width in pixels.
func (a *StripAtlas) Width() int {
	return len(a.order) * a.sectionSize
}

// Height returns the atlas height in pixels.
func (a *StripAtlas) Height() int {
	return a.sectionSize
}

// Bands returns the bands in section order.
func (a *StripAtlas) Bands() []Band {
	return append([]Band(nil), a.order...)
}

// PixelOffset returns the x pixel where the section of b starts, for the
// loader that copies band textures into the atlas.
func (a *StripAtlas) PixelOffset(b Band) (int, bool) {
	i, ok := a.sections[b]
	if !ok {
		return 0, false
	}
	return i * a.sectionSize, true
}

// Lookup returns the UV rect of b's section.
//
// Uses half-pixel insets to center UV sampling and avoid bleeding into the
// neighbouring section. Unknown bands get a degenerate rect at the atlas centre.
func (a *StripAtlas) Lookup(b Band) UVRect {
	i, ok := a.sections[b]
	if !ok {
		return UVRect{Left: 0.5, Right: 0.5, Bottom: 0.5, Top: 0.5}
	}

	width := float32(a.Width())
	height := float32(a.sectionSize)
	halfPixelU := 0.5 / width
	halfPixelV := 0.5 / height

	return UVRect{
		Left:   float32(i*a.sectionSize)/width + halfPixelU,
		Right:  float32((i+1)*a.sectionSize)/width - halfPixelU,
		Top:    halfPixelV,
		Bottom: 1 - halfPixelV,
	}
}
