// internal/component/render.go
package component

import "image/color"

// Renderable is the minimal drawing state for circles on the canvas.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
