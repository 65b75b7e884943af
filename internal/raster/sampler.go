package raster

import "image"

// SampleTexture bilinearly samples the texture at (u, v) with wrapping,
// reading tex.Pix directly. Returns RGBA bytes.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	fx := wrap01(u) * float64(w-1)
	fy := wrap01(v) * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	// Corner offsets and bilinear weights.
	s := tex.Stride
	idx := [4]int{y0*s + x0*4, y0*s + x1*4, y1*s + x0*4, y1*s + x1*4}
	wt := [4]float64{(1 - dx) * (1 - dy), dx * (1 - dy), (1 - dx) * dy, dx * dy}

	var acc [4]float64
	for c := 0; c < 4; c++ {
		for ch := 0; ch < 4; ch++ {
			acc[ch] += float64(tex.Pix[idx[c]+ch]) * wt[c]
		}
	}
	return uint8(acc[0] + 0.5), uint8(acc[1] + 0.5), uint8(acc[2] + 0.5), uint8(acc[3] + 0.5)
}

func wrap01(t float64) float64 {
	t -= float64(int(t))
	if t < 0 {
		t++
	}
	return t
}
