package transforms

import (
	"testing"

	"gocv.io/x/gocv"
)

// newRGBMat builds a rows x cols buffer filled with a single RGB color.
func newRGBMat(t *testing.T, rows, cols int, r, g, b uint8) gocv.Mat {
	t.Helper()

	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	if mat.Empty() {
		t.Fatal("failed to allocate test Mat")
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mat.SetUCharAt3(y, x, 0, r)
			mat.SetUCharAt3(y, x, 1, g)
			mat.SetUCharAt3(y, x, 2, b)
		}
	}
	return mat
}

func assertSameShape(t *testing.T, src, dst gocv.Mat) {
	t.Helper()

	if dst.Rows() != src.Rows() || dst.Cols() != src.Cols() || dst.Channels() != src.Channels() {
		t.Fatalf("shape changed: %dx%dx%d -> %dx%dx%d",
			src.Cols(), src.Rows(), src.Channels(),
			dst.Cols(), dst.Rows(), dst.Channels())
	}
}

func assertMatsEqual(t *testing.T, a, b gocv.Mat) {
	t.Helper()

	assertSameShape(t, a, b)
	for y := 0; y < a.Rows(); y++ {
		for x := 0; x < a.Cols(); x++ {
			for c := 0; c < a.Channels(); c++ {
				av := a.GetUCharAt3(y, x, c)
				bv := b.GetUCharAt3(y, x, c)
				if av != bv {
					t.Fatalf("buffers differ at (%d,%d) channel %d: %d != %d", x, y, c, av, bv)
				}
			}
		}
	}
}
