package transforms

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

const outlineThickness = 2

// outlineColor draws pure blue. gocv encodes color.RGBA as a BGR scalar
// while buffers here are RGB ordered, so the R and B fields swap.
var outlineColor = color.RGBA{R: 255, G: 0, B: 0, A: 0}

// RectangleOutline draws a 2-pixel blue outline rectangle between two
// corners onto a copy of the buffer. Corner order does not matter.
type RectangleOutline struct {
	p1, p2 image.Point
}

func NewRectangleOutline(p1, p2 image.Point) (*RectangleOutline, error) {
	if p1.X < 0 || p1.Y < 0 || p2.X < 0 || p2.Y < 0 {
		return nil, fmt.Errorf("corner coordinates must be non-negative: %v, %v", p1, p2)
	}
	return &RectangleOutline{p1: p1, p2: p2}, nil
}

func (t *RectangleOutline) Name() string {
	return "rectangle"
}

func (t *RectangleOutline) Apply(src gocv.Mat) (gocv.Mat, error) {
	if err := validateSource(src); err != nil {
		return gocv.NewMat(), err
	}

	dst := src.Clone()

	// image.Rect returns the canonical form for any corner order.
	rect := image.Rect(t.p1.X, t.p1.Y, t.p2.X, t.p2.Y)
	gocv.Rectangle(&dst, rect, outlineColor, outlineThickness)

	return dst, nil
}
