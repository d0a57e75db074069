package transforms

import (
	"image"

	"gocv.io/x/gocv"
)

// Sharpen applies a fixed 3x3 Laplacian-based kernel per channel:
//
//	 0 -1  0
//	-1  5 -1
//	 0 -1  0
//
// Border policy is reflect-101 (gocv.BorderDefault), the OpenCV default:
// edge mirror without repeating the border sample. 8-bit destination
// arithmetic saturates to [0,255].
type Sharpen struct{}

func NewSharpen() *Sharpen {
	return &Sharpen{}
}

func (t *Sharpen) Name() string {
	return "sharpen"
}

func (t *Sharpen) Apply(src gocv.Mat) (gocv.Mat, error) {
	if err := validateSource(src); err != nil {
		return gocv.NewMat(), err
	}

	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			switch {
			case y == 1 && x == 1:
				kernel.SetFloatAt(y, x, 5)
			case y == 1 || x == 1:
				kernel.SetFloatAt(y, x, -1)
			default:
				kernel.SetFloatAt(y, x, 0)
			}
		}
	}

	dst := gocv.NewMat()
	gocv.Filter2D(src, &dst, -1, kernel, image.Point{X: -1, Y: -1}, 0, gocv.BorderDefault)

	return dst, nil
}
