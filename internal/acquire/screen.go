package acquire

import (
	"fmt"

	"image-workbench/internal/opencv/conversion"
	"image-workbench/internal/opencv/safe"

	"github.com/vova616/screenshot"
)

// Screen grabs the active display.
func Screen(tracker safe.MemoryTracker) (*Frame, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: screen capture: %v", ErrSourceUnavailable, err)
	}

	mat, err := conversion.ImageToMatWithTracker(img, tracker, "screen")
	if err != nil {
		return nil, fmt.Errorf("%w: converting to buffer: %v", ErrCaptureFailed, err)
	}

	return &Frame{
		Mat:    mat,
		Image:  img,
		Format: "frame",
		Source: "screen",
	}, nil
}
