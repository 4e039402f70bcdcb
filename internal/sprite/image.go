package sprite

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // sheets are PNG
	"os"

	"red-rockit/internal/gamemap"
)

// ColorKey is the sheet background colour rendered as transparent.
var ColorKey = color.NRGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF}

// Decode reads an image file and returns it with the colour key applied.
func Decode(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", path, err)
	}
	return ApplyColorKey(img, ColorKey), nil
}

// ApplyColorKey returns a copy of src where every opaque pixel equal to key
// has alpha zero.
func ApplyColorKey(src image.Image, key color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := dst.NRGBAAt(x, y)
			if c.R == key.R && c.G == key.G && c.B == key.B && c.A == 0xFF {
				dst.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return dst
}

// CheckSheet reports an error if any clip falls outside the sheet bounds b.
func CheckSheet(b image.Rectangle, clips []image.Rectangle) error {
	for _, c := range clips {
		if !c.In(b) {
			return fmt.Errorf("sheet %dx%d does not contain clip %v", b.Dx(), b.Dy(), c)
		}
	}
	return nil
}

// TileRects returns the terrain clips as image rectangles.
func TileRects() []image.Rectangle {
	out := make([]image.Rectangle, 0, len(tileOrigins))
	for k := range tileOrigins {
		r, _ := TileClip(gamemap.TileKind(k))
		out = append(out, ToImage(r))
	}
	return out
}

// PlayerRects returns the player clips as image rectangles.
func PlayerRects() []image.Rectangle {
	out := make([]image.Rectangle, 0, PlayerFrames)
	for f := 0; f < PlayerFrames; f++ {
		r, _ := PlayerClip(f)
		out = append(out, ToImage(r))
	}
	return out
}
