package window

import (
	"image"

	"red-rockit/internal/gamemap"
	"red-rockit/internal/sprite"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a GPU copy of one sprite sheet.
type Texture struct {
	sheet *sprite.Sheet[*ebiten.Image]
}

// NewTexture returns an empty texture.
func NewTexture() *Texture {
	return &Texture{sheet: sprite.NewSheet(func(img image.Image) *ebiten.Image {
		return ebiten.NewImageFromImage(img)
	})}
}

// Load replaces the held sheet with the one at path. See sprite.Sheet.Load.
func (t *Texture) Load(path string, clips []image.Rectangle) error {
	return t.sheet.Load(path, clips)
}

// Free releases the sheet. Calling it on an empty texture does nothing.
func (t *Texture) Free() { t.sheet.Free() }

// Draw copies clip from the sheet onto dst with its top-left at (x, y).
func (t *Texture) Draw(dst *ebiten.Image, clip gamemap.Rect, x, y int) {
	img, ok := t.sheet.Image()
	if !ok {
		return
	}
	sub := img.SubImage(sprite.ToImage(clip)).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(sub, op)
}
