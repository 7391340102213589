package topcode

import (
	"image"
	"image/color"
	"math"
)

// renderTopCode rasterizes a synthetic TopCode test fixture: a circular
// fiducial centered at (cx, cy) with the given ring width unit, id, and
// rotation theta (radians), drawn directly onto dst. Rendering sits
// outside the recognition engine's own scope, so this is reimplemented
// from scratch using image and math rather than the reference TopCodes
// scanner's Image.Draw arc calls, whose shape geometry this follows: four
// concentric bands of one unit each — white, black, white, then the
// 13-sector data ring — matching exactly the radii decoder.go's readCode
// samples at 0.5u, 1.5u, 2.5u and 3.5u.
func renderTopCode(dst *image.RGBA, cx, cy, unit, theta float64, id int) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}

	bounds := dst.Bounds()
	radius := int(4*unit) + 2
	minY, maxY := int(cy)-radius, int(cy)+radius
	minX, maxX := int(cx)-radius, int(cx)+radius
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY > bounds.Max.Y {
		maxY = bounds.Max.Y
	}
	if minX < bounds.Min.X {
		minX = bounds.Min.X
	}
	if maxX > bounds.Max.X {
		maxX = bounds.Max.X
	}

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			dx := float64(px) - cx
			dy := float64(py) - cy
			r := math.Hypot(dx, dy) / unit
			if r >= 4 {
				continue
			}

			var c color.RGBA
			switch {
			case r < 1:
				c = white
			case r < 2:
				c = black
			case r < 3:
				c = white
			default:
				phi := math.Atan2(dy, dx)
				rel := math.Mod(phi-theta, 2*math.Pi)
				if rel < 0 {
					rel += 2 * math.Pi
				}
				s := int(rel/Arc) % Sectors
				if (id>>uint(s))&1 == 1 {
					c = white
				} else {
					c = black
				}
			}
			dst.SetRGBA(px, py, c)
		}
	}
}
