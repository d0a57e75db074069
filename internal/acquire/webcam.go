package acquire

import (
	"fmt"

	"image-workbench/internal/opencv/conversion"
	"image-workbench/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Webcam opens the capture device, reads one frame and releases the
// device unconditionally. The BGR frame is converted to the session's
// RGB ordering before it leaves this package.
func Webcam(device int, tracker safe.MemoryTracker) (*Frame, error) {
	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: opening camera %d: %v", ErrSourceUnavailable, device, err)
	}
	defer cam.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	if ok := cam.Read(&frame); !ok || frame.Empty() {
		return nil, fmt.Errorf("%w: camera %d returned no frame", ErrCaptureFailed, device)
	}

	rgb, err := conversion.BGRToRGB(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	mat, err := safe.Adopt(rgb, tracker, "webcam")
	if err != nil {
		rgb.Close()
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	img, err := conversion.MatToImage(mat)
	if err != nil {
		mat.Close()
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	return &Frame{
		Mat:    mat,
		Image:  img,
		Format: "frame",
		Source: "webcam",
	}, nil
}
