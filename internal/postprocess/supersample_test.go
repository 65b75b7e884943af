package postprocess

import (
	"image"
	"testing"
)

func solid(size int, r, g, b, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func TestDownsamplePassThrough(t *testing.T) {
	img := solid(64, 1, 2, 3, 255)
	out := Downsample(img, 64)
	if out != img {
		t.Fatalf("image at target size was rescaled")
	}
	out = Downsample(img, 128)
	if out != img {
		t.Fatalf("image below target size was rescaled")
	}
}

func TestDownsampleSolidColor(t *testing.T) {
	img := solid(128, 200, 100, 50, 255)
	out := Downsample(img, 64)

	if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 64 {
		t.Fatalf("bounds %v", out.Bounds())
	}
	// A flat image must survive filtering without color shift.
	for i := 0; i < len(out.Pix); i += 4 {
		if d := int(out.Pix[i]) - 200; d < -1 || d > 1 {
			t.Fatalf("pixel %d red %d, want ~200", i/4, out.Pix[i])
		}
		if out.Pix[i+3] != 255 {
			t.Fatalf("pixel %d alpha %d", i/4, out.Pix[i+3])
		}
	}
}

func TestDownsampleTransparentEdge(t *testing.T) {
	// Left half opaque white, right half fully transparent black. After
	// the premultiplied scale the opaque side must stay white, not ring
	// grey from the invisible black pixels.
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 64; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i] = 255
			img.Pix[i+1] = 255
			img.Pix[i+2] = 255
			img.Pix[i+3] = 255
		}
	}

	out := Downsample(img, 64)
	for y := 0; y < 64; y++ {
		i := out.PixOffset(4, y)
		if out.Pix[i] < 250 || out.Pix[i+3] != 255 {
			t.Fatalf("row %d: opaque interior dimmed to %v", y, out.Pix[i:i+4])
		}
	}
}
