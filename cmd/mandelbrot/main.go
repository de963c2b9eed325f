// Renders an 8K Mandelbrot set to mandelbrot.png. The fractal exists only
// as a lazy mapping until materialization, so the sole full-size allocation
// is the eager buffer handed to the encoder.
package main

import (
	"log"

	"github.com/endogeny/png-framing/frame"
	"github.com/endogeny/png-framing/png"
)

const (
	width   = 7680
	height  = 4320
	maxIter = 256
)

func main() {
	scale := 3.0 / float64(width)

	image := frame.NewFunction(width, height, func(x, y int) frame.Pixel {
		re := scale*float64(x) - 2.0
		im := scale * (float64(y) - float64(height)/2.0)

		if n, escaped := mandelbrot(re, im); escaped {
			return frame.Pixel{G: uint8(n * 255.0), A: 255}
		}
		return frame.Pixel{A: 255}
	})

	if err := png.Save(frame.NewChunky(image), "mandelbrot.png"); err != nil {
		log.Fatalf("could not save image: %v", err)
	}
	log.Println("image saved to mandelbrot.png")
}

// mandelbrot iterates z = z^2 + c and reports the normalized escape
// iteration, or escaped=false when the point stays bounded.
func mandelbrot(x, y float64) (float64, bool) {
	var u, v, u2, v2 float64

	i := 0
	for i <= maxIter && u2+v2 < 4.0 {
		v = 2.0*u*v + y
		u = u2 - v2 + x
		u2 = u * u
		v2 = v * v
		i++
	}

	if i <= maxIter {
		return float64(i) / float64(maxIter), true
	}
	return 0, false
}
