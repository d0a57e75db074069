package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// RedMask binarizes the buffer against its red plane: pixels whose red
// sample exceeds the threshold become white in all three channels, the
// rest black.
type RedMask struct {
	threshold int
}

func NewRedMask(threshold int) (*RedMask, error) {
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("threshold out of range [0,255]: %d", threshold)
	}
	return &RedMask{threshold: threshold}, nil
}

func (t *RedMask) Name() string {
	return "red_mask"
}

func (t *RedMask) Threshold() int {
	return t.threshold
}

func (t *RedMask) Apply(src gocv.Mat) (gocv.Mat, error) {
	if err := validateSource(src); err != nil {
		return gocv.NewMat(), err
	}

	planes := gocv.Split(src)
	defer closePlanes(planes)

	// ThresholdBinary writes 255 where red > threshold, 0 elsewhere.
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(planes[0], &binary, float32(t.threshold), 255, gocv.ThresholdBinary)

	dst := gocv.NewMat()
	gocv.Merge([]gocv.Mat{binary, binary, binary}, &dst)

	return dst, nil
}
