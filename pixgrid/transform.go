package pixgrid

import (
	"fmt"

	"github.com/fliprot/fliprot/dihedral"
)

// Apply runs every transform in seq against img, in order, and returns
// the result. img is never mutated: each step writes into a fresh
// buffer, so full and reduced sequences can be applied independently to
// the same original and compared.
//
// Returns ErrNilImage for a nil image and dihedral.ErrUnknownTransform
// for a sequence element outside the five names.
func Apply(seq []dihedral.Transform, img *Image) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	out := img.Clone()
	for _, t := range seq {
		switch t {
		case dihedral.FlipHorizontal:
			out = flipLeftRight(out)
		case dihedral.FlipVertical:
			out = flipTopBottom(out)
		case dihedral.RotateLeft:
			out = rotateCCW(out)
		case dihedral.Rotate180:
			out = rotateHalf(out)
		case dihedral.RotateRight:
			out = rotateCW(out)
		default:
			return nil, fmt.Errorf("%w: %v", dihedral.ErrUnknownTransform, t)
		}
	}
	return out, nil
}

// flipLeftRight mirrors about the vertical axis; dimensions unchanged.
func flipLeftRight(src *Image) *Image {
	out := &Image{width: src.width, height: src.height, pix: make([]uint8, len(src.pix))}
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			copyPixel(out, x, y, src, src.width-1-x, y)
		}
	}
	return out
}

// flipTopBottom mirrors about the horizontal axis; dimensions unchanged.
// Rows swap wholesale, so this copies row by row.
func flipTopBottom(src *Image) *Image {
	out := &Image{width: src.width, height: src.height, pix: make([]uint8, len(src.pix))}
	rowLen := src.width * 4
	for y := 0; y < src.height; y++ {
		dst := out.pix[y*rowLen : (y+1)*rowLen]
		copy(dst, src.pix[(src.height-1-y)*rowLen:])
	}
	return out
}

// rotateCW rotates 90° clockwise; width and height swap.
func rotateCW(src *Image) *Image {
	out := &Image{width: src.height, height: src.width, pix: make([]uint8, len(src.pix))}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			copyPixel(out, x, y, src, y, src.height-1-x)
		}
	}
	return out
}

// rotateCCW rotates 90° counterclockwise; width and height swap.
func rotateCCW(src *Image) *Image {
	out := &Image{width: src.height, height: src.width, pix: make([]uint8, len(src.pix))}
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			copyPixel(out, x, y, src, src.width-1-y, x)
		}
	}
	return out
}

// rotateHalf rotates 180°; dimensions unchanged.
func rotateHalf(src *Image) *Image {
	out := &Image{width: src.width, height: src.height, pix: make([]uint8, len(src.pix))}
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			copyPixel(out, x, y, src, src.width-1-x, src.height-1-y)
		}
	}
	return out
}

// copyPixel copies the 4-byte pixel at (sx, sy) in src to (dx, dy) in dst.
func copyPixel(dst *Image, dx, dy int, src *Image, sx, sy int) {
	di := dst.offset(dx, dy)
	si := src.offset(sx, sy)
	copy(dst.pix[di:di+4], src.pix[si:si+4])
}
