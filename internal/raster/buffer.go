package raster

import "math"

// FrameBuffer is the CPU render target: interleaved RGBA color and a
// per-pixel depth plane, both flat for cache locality. Depth starts at
// -inf and the rasterizer keeps the greatest value per pixel.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA, len = W*H*4
	Depth  []float64 // len = W*H
}

// NewFrameBuffer allocates a transparent-black buffer with cleared depth.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// Fill floods the color plane with one RGBA value. Depth is untouched,
// so geometry still draws over the fill.
func (fb *FrameBuffer) Fill(r, g, b, a uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
}
