package texture

import (
	"image"
	"math"

	"golang.org/x/exp/rand"
)

// SkinOptions tunes the procedural hide generator.
type SkinOptions struct {
	Size int // square texture edge, default 1024

	// Base hide color.
	BaseR, BaseG, BaseB uint8

	PatchCount int     // mottling patches, default 100
	PatchAlpha float64 // patch opacity, default 0.12
}

// DefaultSkin is the grey elephant hide.
func DefaultSkin() SkinOptions {
	return SkinOptions{
		Size:       1024,
		BaseR:      115,
		BaseG:      115,
		BaseB:      120,
		PatchCount: 100,
		PatchAlpha: 0.12,
	}
}

// GenerateSkin paints a mottled hide: a flat base coat with translucent
// elliptical patches, half darker and half lighter than the base. The
// seed fully determines the pattern.
func GenerateSkin(opts SkinOptions, seed uint64) *image.NRGBA {
	size := opts.Size
	if size <= 0 {
		size = 1024
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = opts.BaseR
		img.Pix[i+1] = opts.BaseG
		img.Pix[i+2] = opts.BaseB
		img.Pix[i+3] = 255
	}

	rng := rand.New(rand.NewSource(seed))
	for p := 0; p < opts.PatchCount; p++ {
		cx := rng.Float64() * float64(size)
		cy := rng.Float64() * float64(size)
		r := float64(size)/20 + rng.Float64()*float64(size)/10
		dark := rng.Float64() < 0.5
		delta := 10 + rng.Float64()*10
		angle := rng.Float64() * math.Pi

		var dr, dg, db float64
		if dark {
			dr, dg, db = -delta, -delta, -delta*0.8
		} else {
			dr, dg, db = delta, delta*0.9, delta*0.5
		}
		fillEllipse(img, cx, cy, r, r*0.7, angle,
			float64(opts.BaseR)+dr, float64(opts.BaseG)+dg, float64(opts.BaseB)+db,
			opts.PatchAlpha)
	}
	return img
}

// fillEllipse alpha-blends a rotated ellipse into the image.
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry, angle, r, g, b, alpha float64) {
	bound := math.Max(rx, ry)
	minX := int(cx - bound)
	maxX := int(cx + bound + 1)
	minY := int(cy - bound)
	maxY := int(cy + bound + 1)
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	cos, sin := math.Cos(angle), math.Sin(angle)
	for y := minY; y <= maxY; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= w {
				continue
			}
			// Rotate into the ellipse's local frame.
			dx := float64(x) - cx
			dy := float64(y) - cy
			lx := dx*cos + dy*sin
			ly := -dx*sin + dy*cos
			if (lx*lx)/(rx*rx)+(ly*ly)/(ry*ry) > 1 {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i] = blend(img.Pix[i], r, alpha)
			img.Pix[i+1] = blend(img.Pix[i+1], g, alpha)
			img.Pix[i+2] = blend(img.Pix[i+2], b, alpha)
		}
	}
}

func blend(dst uint8, src, alpha float64) uint8 {
	v := float64(dst)*(1-alpha) + src*alpha
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
