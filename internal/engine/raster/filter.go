package raster

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/hypercube/internal/engine/draw"
)

// applyFilter returns img blurred by a gaussian whose standard deviation
// is the filter's blur radius, then with contrast scaled around mid grey.
// An identity filter returns img itself.
func applyFilter(img *image.RGBA, f draw.Filter) *image.RGBA {
	if f.IsIdentity() {
		return img
	}

	var out image.Image = img
	if f.Blur > 0 {
		out = imaging.Blur(out, f.Blur)
	}
	if f.Contrast != 1 {
		// bild's change is relative: 0 keeps, -1 is flat grey
		out = adjust.Contrast(out, f.Contrast-1)
	}
	return toRGBA(out)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Bounds(), img, b.Min, xdraw.Src)
	return out
}
