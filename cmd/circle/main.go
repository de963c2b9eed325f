// Renders a procedural ring to circle.png.
package main

import (
	"log"

	"github.com/endogeny/png-framing/frame"
	"github.com/endogeny/png-framing/png"
)

func main() {
	image := frame.NewFunction(512, 512, func(x, y int) frame.Pixel {
		fx := float64(x)/256.0 - 1.0
		fy := float64(y)/256.0 - 1.0
		z := fx*fx + fy*fy

		switch {
		case z <= 0.5:
			return frame.Pixel{A: 255}
		case z <= 0.505:
			return frame.Pixel{G: 255, A: 255}
		default:
			return frame.Pixel{R: 255, G: 255, B: 255, A: 255}
		}
	})

	if err := png.Save(frame.NewChunky(image), "circle.png"); err != nil {
		log.Fatalf("could not save image: %v", err)
	}
	log.Println("image saved to circle.png")
}
