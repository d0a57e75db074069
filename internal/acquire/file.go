package acquire

import (
	"bytes"
	"fmt"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	"image-workbench/internal/opencv/conversion"
	"image-workbench/internal/opencv/safe"
)

// File decodes an image from a reader. Bytes are read into memory first,
// so path encoding never matters: non-ASCII file names work because the
// decoder never sees a path.
func File(r io.Reader, tracker safe.MemoryTracker) (*Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading image data: %v", ErrSourceUnavailable, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	mat, err := conversion.ImageToMatWithTracker(img, tracker, "load")
	if err != nil {
		return nil, fmt.Errorf("%w: converting to buffer: %v", ErrDecodeFailed, err)
	}

	return &Frame{
		Mat:      mat,
		Image:    img,
		Format:   format,
		ByteSize: int64(len(data)),
		Source:   "file",
	}, nil
}
