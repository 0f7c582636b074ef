package chemplot

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

//Some internal convenience functions.

//isInInt returns true if test is in container, false otherwise.
func isInInt(container []int, test int) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}

//rgba converts a colorful.Color into an opaque color.RGBA, which the plotters draw
//faster than a generic color.Color. Invalid colors are taken as gray.
func rgba(c colorful.Color) color.RGBA {
	if !c.IsValid() {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
