package transforms

import "testing"

func TestRedMaskAllZeroBufferStaysZero(t *testing.T) {
	src := newRGBMat(t, 4, 4, 0, 0, 0)
	defer src.Close()

	mask, err := NewRedMask(10)
	if err != nil {
		t.Fatalf("NewRedMask: %v", err)
	}

	dst, err := mask.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	defer dst.Close()

	assertSameShape(t, src, dst)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			for c := 0; c < 3; c++ {
				if got := dst.GetUCharAt3(y, x, c); got != 0 {
					t.Fatalf("expected 0 at (%d,%d) channel %d, got %d", x, y, c, got)
				}
			}
		}
	}
}

func TestRedMaskBrightRedBufferAllWhite(t *testing.T) {
	src := newRGBMat(t, 4, 4, 200, 0, 0)
	defer src.Close()

	mask, _ := NewRedMask(100)
	dst, err := mask.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	defer dst.Close()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			for c := 0; c < 3; c++ {
				if got := dst.GetUCharAt3(y, x, c); got != 255 {
					t.Fatalf("expected 255 at (%d,%d) channel %d, got %d", x, y, c, got)
				}
			}
		}
	}
}

func TestRedMaskMatchesRedPlaneComparison(t *testing.T) {
	src := newRGBMat(t, 3, 3, 0, 0, 0)
	defer src.Close()

	// Red values straddling the threshold; green and blue must not matter.
	values := [3][3]uint8{
		{0, 100, 101},
		{150, 99, 255},
		{100, 101, 50},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetUCharAt3(y, x, 0, values[y][x])
			src.SetUCharAt3(y, x, 1, 255)
			src.SetUCharAt3(y, x, 2, 255)
		}
	}

	mask, _ := NewRedMask(100)
	dst, err := mask.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	defer dst.Close()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			var want uint8
			if values[y][x] > 100 {
				want = 255
			}
			for c := 0; c < 3; c++ {
				got := dst.GetUCharAt3(y, x, c)
				if got != want {
					t.Fatalf("red=%d at (%d,%d) channel %d: got %d, want %d",
						values[y][x], x, y, c, got, want)
				}
			}
		}
	}
}

func TestRedMaskOutputIsBinary(t *testing.T) {
	src := newRGBMat(t, 4, 4, 0, 0, 0)
	defer src.Close()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetUCharAt3(y, x, 0, uint8(y*64+x*16))
		}
	}

	mask, _ := NewRedMask(127)
	dst, err := mask.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	defer dst.Close()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			for c := 0; c < 3; c++ {
				got := dst.GetUCharAt3(y, x, c)
				if got != 0 && got != 255 {
					t.Fatalf("non-binary sample %d at (%d,%d) channel %d", got, x, y, c)
				}
			}
		}
	}
}

func TestRedMaskRejectsOutOfRangeThreshold(t *testing.T) {
	if _, err := NewRedMask(-1); err == nil {
		t.Fatal("expected error for threshold -1")
	}
	if _, err := NewRedMask(256); err == nil {
		t.Fatal("expected error for threshold 256")
	}
}
