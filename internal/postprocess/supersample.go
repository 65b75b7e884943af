// Package postprocess finishes rendered frames: supersample reduction
// and alpha-safe scaling.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"creature-forge/internal/mathutil"
)

// Downsample scales a supersampled frame down to targetSize with
// CatmullRom filtering. Color is premultiplied before scaling and
// unpremultiplied after, so transparent edges do not ring dark.
// Images already at or below the target pass through unchanged.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := float64(img.Pix[i+3]) / 255.0
		out.Pix[i] = uint8(float64(img.Pix[i])*a + 0.5)
		out.Pix[i+1] = uint8(float64(img.Pix[i+1])*a + 0.5)
		out.Pix[i+2] = uint8(float64(img.Pix[i+2])*a + 0.5)
		out.Pix[i+3] = img.Pix[i+3]
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	for i := 0; i < len(img.Pix); i += 4 {
		a := float64(img.Pix[i+3])
		if a > 1 {
			inv := 255.0 / a
			out.Pix[i] = clamp8(float64(img.Pix[i]) * inv)
			out.Pix[i+1] = clamp8(float64(img.Pix[i+1]) * inv)
			out.Pix[i+2] = clamp8(float64(img.Pix[i+2]) * inv)
		}
		out.Pix[i+3] = img.Pix[i+3]
	}
	return out
}

func clamp8(v float64) uint8 {
	return uint8(mathutil.Clamp(v, 0, 255) + 0.5)
}
