//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface strokes lines straight onto an offscreen ebiten image.
type ImageSurface struct {
	img   *ebiten.Image
	col   color.Color
	width float32

	penX, penY float32
	hasPen     bool
}

// NewImageSurface allocates a w×h transparent image drawn in col.
func NewImageSurface(w, h int, col color.Color) *ImageSurface {
	return &ImageSurface{
		img:   ebiten.NewImage(w, h),
		col:   col,
		width: float32(DefaultStrokeWidth),
	}
}

// Image exposes the backing image for compositing.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

func (s *ImageSurface) MoveTo(x, y float64) {
	s.penX, s.penY, s.hasPen = float32(x), float32(y), true
}

func (s *ImageSurface) LineTo(x, y float64) {
	fx, fy := float32(x), float32(y)
	if s.hasPen {
		vector.StrokeLine(s.img, s.penX, s.penY, fx, fy, s.width, s.col, true)
	}
	s.penX, s.penY, s.hasPen = fx, fy, true
}

func (s *ImageSurface) Stroke() { s.hasPen = false }

func (s *ImageSurface) Clear() {
	s.img.Clear()
	s.hasPen = false
}

// Blit draws the layer onto dst at the given scale.
func (s *ImageSurface) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(s.img, op)
}
