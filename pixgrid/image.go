// Package pixgrid defines the Image pixel buffer and its bridges to the
// standard image packages.
package pixgrid

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Image is a rectangular RGBA pixel buffer, row-major, 4 bytes per
// pixel. It implements image.Image; transform operations always return
// a freshly allocated Image and never mutate their receiver or input.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// New creates a zeroed (transparent black) image of the given size.
// Non-positive dimensions return ErrEmptyImage.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// Width returns the image width in pixels.
func (p *Image) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Image) Height() int { return p.height }

// Pix returns the raw RGBA pixel data.
func (p *Image) Pix() []uint8 { return p.pix }

// offset returns the index of pixel (x, y) in the buffer.
func (p *Image) offset(x, y int) int { return (y*p.width + x) * 4 }

// Set writes one pixel; coordinates outside the image are ignored.
func (p *Image) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.offset(x, y)
	p.pix[i+0] = c.R
	p.pix[i+1] = c.G
	p.pix[i+2] = c.B
	p.pix[i+3] = c.A
}

// RGBAAt reads one pixel; coordinates outside the image are transparent black.
func (p *Image) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := p.offset(x, y)
	return color.RGBA{R: p.pix[i+0], G: p.pix[i+1], B: p.pix[i+2], A: p.pix[i+3]}
}

// At implements the image.Image interface.
func (p *Image) At(x, y int) color.Color { return p.RGBAAt(x, y) }

// Bounds implements the image.Image interface.
func (p *Image) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// ColorModel implements the image.Image interface.
func (p *Image) ColorModel() color.Model { return color.RGBAModel }

// Clone returns a deep copy of the image.
func (p *Image) Clone() *Image {
	out := &Image{width: p.width, height: p.height, pix: make([]uint8, len(p.pix))}
	copy(out.pix, p.pix)
	return out
}

// FromImage copies an arbitrary image.Image into an Image.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &Image{width: w, height: h, pix: make([]uint8, w*h*4)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := out.offset(x, y)
			out.pix[i+0] = uint8(r >> 8)
			out.pix[i+1] = uint8(g >> 8)
			out.pix[i+2] = uint8(b >> 8)
			out.pix[i+3] = uint8(a >> 8)
		}
	}
	return out
}

// ToImage converts the image to a standard *image.RGBA.
func (p *Image) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.pix)
	return img
}

// LoadPNG reads a PNG file into an Image.
func LoadPNG(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pixgrid: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pixgrid: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

// SavePNG writes the image to a PNG file.
func (p *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixgrid: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("pixgrid: encode %s: %w", path, err)
	}
	return nil
}

// Equal reports whether a and b have identical dimensions and
// pixel-identical content.
func Equal(a, b *Image) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			return false
		}
	}
	return true
}
