package transforms

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestChannelExtractCopiesSelectedPlane(t *testing.T) {
	src := newRGBMat(t, 3, 4, 10, 20, 30)
	defer src.Close()

	cases := []struct {
		channel Channel
		want    uint8
	}{
		{Red, 10},
		{Green, 20},
		{Blue, 30},
	}

	for _, tc := range cases {
		extract, err := NewChannelExtract(tc.channel)
		if err != nil {
			t.Fatalf("NewChannelExtract(%v): %v", tc.channel, err)
		}

		dst, err := extract.Apply(src)
		if err != nil {
			t.Fatalf("Apply(%v): %v", tc.channel, err)
		}

		assertSameShape(t, src, dst)
		for y := 0; y < dst.Rows(); y++ {
			for x := 0; x < dst.Cols(); x++ {
				for c := 0; c < 3; c++ {
					if got := dst.GetUCharAt3(y, x, c); got != tc.want {
						t.Fatalf("%v channel %d at (%d,%d): got %d, want %d",
							tc.channel, c, x, y, got, tc.want)
					}
				}
			}
		}
		dst.Close()
	}
}

func TestChannelExtractDoesNotMutateSource(t *testing.T) {
	src := newRGBMat(t, 2, 2, 1, 2, 3)
	defer src.Close()
	reference := src.Clone()
	defer reference.Close()

	extract, _ := NewChannelExtract(Green)
	dst, err := extract.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	defer dst.Close()

	assertMatsEqual(t, src, reference)
}

func TestChannelExtractRejectsInvalidSelector(t *testing.T) {
	if _, err := NewChannelExtract(Channel(5)); err == nil {
		t.Fatal("expected error for out-of-range channel")
	}
}

func TestChannelExtractRejectsEmptyBuffer(t *testing.T) {
	extract, _ := NewChannelExtract(Red)
	empty := gocv.NewMat()
	defer empty.Close()

	if _, err := extract.Apply(empty); err == nil {
		t.Fatal("expected error for empty buffer")
	}
}

func TestParseChannel(t *testing.T) {
	for name, want := range map[string]Channel{"red": Red, "green": Green, "blue": Blue} {
		got, err := ParseChannel(name)
		if err != nil {
			t.Fatalf("ParseChannel(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseChannel(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseChannel("alpha"); err == nil {
		t.Fatal("expected error for unknown channel name")
	}
}
