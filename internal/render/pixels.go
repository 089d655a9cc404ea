package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Palette holds the colours used to compose the layers.
type Palette struct {
	Background color.RGBA
	Committed  color.RGBA
	Live       color.RGBA
}

// DefaultPalette draws white lines on black.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{A: 255},
		Committed:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Live:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// fillCoverageRGBA paints fg over the existing pixels in buf with the
// per-pixel coverage as alpha.
func fillCoverageRGBA(buf []byte, coverage []uint8, fg color.RGBA) {
	for i, c := range coverage {
		if c == 0 {
			continue
		}
		base := i * 4
		a := uint32(c) * uint32(fg.A) / 255
		inv := 255 - a
		buf[base+0] = uint8((uint32(fg.R)*a + uint32(buf[base+0])*inv) / 255)
		buf[base+1] = uint8((uint32(fg.G)*a + uint32(buf[base+1])*inv) / 255)
		buf[base+2] = uint8((uint32(fg.B)*a + uint32(buf[base+2])*inv) / 255)
		buf[base+3] = uint8(a + uint32(buf[base+3])*inv/255)
	}
}

// fillSolidRGBA sets every pixel in buf to col.
func fillSolidRGBA(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Compose flattens the committed and transient masks over the background.
// Either mask may be nil; masks whose size does not match dst are skipped.
func Compose(dst *image.RGBA, committed, transient *image.Alpha, pal Palette) {
	fillSolidRGBA(dst.Pix, pal.Background)
	n := dst.Bounds().Dx() * dst.Bounds().Dy()
	if committed != nil && len(committed.Pix) == n {
		fillCoverageRGBA(dst.Pix, committed.Pix, pal.Committed)
	}
	if transient != nil && len(transient.Pix) == n {
		fillCoverageRGBA(dst.Pix, transient.Pix, pal.Live)
	}
}

// Snapshot composes the layers into a new image sized like committed.
func Snapshot(committed, transient *image.Alpha, pal Palette) *image.RGBA {
	dst := image.NewRGBA(committed.Bounds())
	Compose(dst, committed, transient, pal)
	return dst
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
