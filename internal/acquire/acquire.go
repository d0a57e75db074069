// Package acquire provides the image sources: file decode, single-frame
// webcam capture, and full-screen grab. Every source yields a well-formed
// RGB buffer or fails without touching session state.
package acquire

import (
	"errors"
	"image"

	"image-workbench/internal/opencv/safe"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrDecodeFailed      = errors.New("decode failed")
	ErrCaptureFailed     = errors.New("capture failed")
)

// Frame is one acquired image. Ownership of Mat passes to the caller.
type Frame struct {
	Mat      *safe.Mat
	Image    image.Image
	Format   string
	ByteSize int64
	Source   string
}
