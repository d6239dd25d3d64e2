// pkg/render/raster.go
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// FillCircle draws a filled disc centred at (cx, cy) onto dst, blending over
// what is already there. z is reused between calls to avoid allocations.
func FillCircle(z *vector.Rasterizer, dst draw.Image, cx, cy, r float32, c color.Color) {
	if r <= 0 {
		return
	}
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Fill composites c over the whole of dst.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}
