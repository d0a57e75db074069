package conversion

import (
	"fmt"

	"gocv.io/x/gocv"
)

// BGRToRGB converts a raw OpenCV frame (BGR, the capture default) into the
// session's RGB ordering. The caller owns the returned Mat.
func BGRToRGB(src gocv.Mat) (dst gocv.Mat, err error) {
	defer func() {
		if r := recover(); r != nil {
			if !dst.Empty() {
				dst.Close()
			}
			dst = gocv.NewMat()
			err = fmt.Errorf("color conversion panicked: %v", r)
		}
	}()

	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("source frame is empty")
	}
	if src.Channels() != 3 {
		return gocv.NewMat(), fmt.Errorf("BGR to RGB conversion requires 3 channels, got %d", src.Channels())
	}

	dst = gocv.NewMat()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToRGB)
	return dst, nil
}
