package conversion

import (
	"fmt"
	"image"
	"image/color"

	"image-workbench/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Session buffers keep red-green-blue channel order. Everything crossing
// the boundary between Go images and Mats goes through this package so the
// ordering is converted in exactly one place.

// MatToImage converts an RGB Mat to a standard Go image.
func MatToImage(src *safe.Mat) (image.Image, error) {
	if err := safe.ValidateRGBBuffer(src, "Mat to image conversion"); err != nil {
		return nil, err
	}

	rows := src.Rows()
	cols := src.Cols()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, err := src.GetUCharAt3(y, x, 0)
			if err != nil {
				return nil, fmt.Errorf("R channel access failed at (%d,%d): %w", x, y, err)
			}
			g, err := src.GetUCharAt3(y, x, 1)
			if err != nil {
				return nil, fmt.Errorf("G channel access failed at (%d,%d): %w", x, y, err)
			}
			b, err := src.GetUCharAt3(y, x, 2)
			if err != nil {
				return nil, fmt.Errorf("B channel access failed at (%d,%d): %w", x, y, err)
			}
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img, nil
}

// ImageToMat converts a standard Go image to an RGB Mat.
func ImageToMat(img image.Image) (*safe.Mat, error) {
	return ImageToMatWithTracker(img, nil, "")
}

func ImageToMatWithTracker(img image.Image, tracker safe.MemoryTracker, tag string) (*safe.Mat, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if err := safe.ValidateDimensions(width, height, "image to Mat conversion"); err != nil {
		return nil, err
	}

	mat, err := safe.NewMatWithTracker(height, width, gocv.MatTypeCV8UC3, tracker, tag)
	if err != nil {
		return nil, err
	}

	switch typedImg := img.(type) {
	case *image.RGBA:
		err = rgbaToMat(typedImg, mat, width, height)
	case *image.NRGBA:
		err = nrgbaToMat(typedImg, mat, width, height)
	default:
		err = genericToMat(img, mat, width, height)
	}
	if err != nil {
		mat.Close()
		return nil, err
	}

	return mat, nil
}

func rgbaToMat(img *image.RGBA, mat *safe.Mat, width, height int) error {
	bounds := img.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := img.RGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
			if err := setRGB(mat, y, x, pixel.R, pixel.G, pixel.B); err != nil {
				return err
			}
		}
	}
	return nil
}

func nrgbaToMat(img *image.NRGBA, mat *safe.Mat, width, height int) error {
	bounds := img.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := img.NRGBAAt(x+bounds.Min.X, y+bounds.Min.Y)
			if err := setRGB(mat, y, x, pixel.R, pixel.G, pixel.B); err != nil {
				return err
			}
		}
	}
	return nil
}

func genericToMat(img image.Image, mat *safe.Mat, width, height int) error {
	bounds := img.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			if err := setRGB(mat, y, x, uint8(r>>8), uint8(g>>8), uint8(b>>8)); err != nil {
				return err
			}
		}
	}
	return nil
}

func setRGB(mat *safe.Mat, row, col int, r, g, b uint8) error {
	if err := mat.SetUCharAt3(row, col, 0, r); err != nil {
		return fmt.Errorf("R channel setting failed at (%d,%d): %w", col, row, err)
	}
	if err := mat.SetUCharAt3(row, col, 1, g); err != nil {
		return fmt.Errorf("G channel setting failed at (%d,%d): %w", col, row, err)
	}
	if err := mat.SetUCharAt3(row, col, 2, b); err != nil {
		return fmt.Errorf("B channel setting failed at (%d,%d): %w", col, row, err)
	}
	return nil
}
