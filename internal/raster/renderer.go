// Package raster renders skinned creature meshes on the CPU: flat-shaded
// triangles into a z-buffered framebuffer with sRGB-correct lighting and
// ACES tone mapping. No GPU, no windowing; output is a plain image.
package raster

import (
	"image"

	"creature-forge/internal/camera"
	"creature-forge/internal/meshbuf"
)

// Options selects framing and quality for one render.
type Options struct {
	Size        int
	Supersample int // render at Size*Supersample, caller downsamples
	Camera      camera.Orbit
	Background  [4]uint8
	Light       *LightConfig // nil for DefaultLightConfig
}

// Render rasterizes the mesh to an NRGBA image. positions overrides the
// mesh's own vertex positions when non-nil (skinned frames); the mesh
// still supplies UVs and indices.
func Render(mesh *meshbuf.Buffer, positions []float64, tex *image.NRGBA, opts Options) *image.NRGBA {
	if positions == nil {
		positions = mesh.Positions
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	renderSize := opts.Size * ss
	margin := 16 * ss

	rot := opts.Camera.Rotation()
	fit := camera.FitView(positions, rot, renderSize, margin)
	px, py, pz := camera.Project(positions, rot, fit, renderSize)

	fb := NewFrameBuffer(renderSize, renderSize)
	if opts.Background[3] != 0 {
		fb.Fill(opts.Background[0], opts.Background[1], opts.Background[2], opts.Background[3])
	}

	lc := DefaultLightConfig()
	if opts.Light != nil {
		lc = *opts.Light
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		vi := [3]int{int(mesh.Indices[i]), int(mesh.Indices[i+1]), int(mesh.Indices[i+2])}
		RasterizeTriangle(fb, px, py, pz, mesh.UVs, vi, tex, 160, 160, 170, &lc)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img
}
