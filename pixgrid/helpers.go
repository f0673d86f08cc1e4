package pixgrid

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Scale resamples img to width×height using approximate bilinear
// interpolation. Used by the demo to shrink the reference image to a
// terminal-friendly preview size.
func Scale(img *Image, width, height int) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img.ToImage(), img.Bounds(), draw.Over, nil)
	return FromImage(dst), nil
}

// TestPattern builds a deterministic, fully asymmetric reference image:
// a two-axis color gradient with a solid marker in the top-left corner.
// No two of the eight symmetries of the square map it onto itself, so it
// distinguishes every group element.
func TestPattern(width, height int) (*Image, error) {
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(255 * x / width),
				G: uint8(255 * y / height),
				B: uint8(255 * (x + y) / (width + height)),
				A: 255,
			})
		}
	}
	// Corner marker breaks any residual symmetry on tiny images.
	mw, mh := (width+3)/4, (height+3)/4
	for y := 0; y < mh; y++ {
		for x := 0; x < mw; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img, nil
}
