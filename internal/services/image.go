package services

import (
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"strings"
	"time"

	"image-workbench/internal/acquire"
	"image-workbench/internal/logger"
	"image-workbench/internal/models"
	"image-workbench/internal/opencv/memory"

	"fyne.io/fyne/v2"
)

// ImageService orchestrates acquisition and saving. Every successful
// acquisition replaces the session buffer; every failure leaves it alone.
type ImageService struct {
	session      *models.Session
	tracker      *memory.Manager
	log          logger.Logger
	cameraDevice int
	jpegQuality  int
}

func NewImageService(session *models.Session, tracker *memory.Manager, log logger.Logger, cameraDevice, jpegQuality int) *ImageService {
	return &ImageService{
		session:      session,
		tracker:      tracker,
		log:          log,
		cameraDevice: cameraDevice,
		jpegQuality:  jpegQuality,
	}
}

// LoadFromReader decodes an image from a file dialog reader and installs
// it as the current buffer.
func (s *ImageService) LoadFromReader(ctx context.Context, reader fyne.URIReadCloser) (*models.ImageData, error) {
	defer reader.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	uri := reader.URI()
	frame, err := acquire.File(reader, s.tracker)
	if err != nil {
		return nil, err
	}

	data := s.install(frame, uri.String())

	s.log.Info("ImageService", "image loaded", map[string]interface{}{
		"uri":    uri.Name(),
		"format": data.Format,
		"width":  data.Width,
		"height": data.Height,
		"bytes":  data.Metadata.FileSize,
	})
	return data, nil
}

// CaptureWebcam reads a single frame from the configured camera device.
func (s *ImageService) CaptureWebcam(ctx context.Context) (*models.ImageData, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	frame, err := acquire.Webcam(s.cameraDevice, s.tracker)
	if err != nil {
		return nil, err
	}

	data := s.install(frame, "")

	s.log.Info("ImageService", "webcam frame captured", map[string]interface{}{
		"device": s.cameraDevice,
		"width":  data.Width,
		"height": data.Height,
	})
	return data, nil
}

// CaptureScreen grabs the active display.
func (s *ImageService) CaptureScreen(ctx context.Context) (*models.ImageData, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	frame, err := acquire.Screen(s.tracker)
	if err != nil {
		return nil, err
	}

	data := s.install(frame, "")

	s.log.Info("ImageService", "screen captured", map[string]interface{}{
		"width":  data.Width,
		"height": data.Height,
	})
	return data, nil
}

// Save encodes the current buffer to a file dialog writer. The format
// follows the chosen extension; PNG is the default. Session state never
// changes on save.
func (s *ImageService) Save(ctx context.Context, writer fyne.URIWriteCloser) error {
	defer writer.Close()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	current := s.session.Current()
	if current == nil || current.Image == nil {
		return ErrNoImage
	}

	ext := strings.ToLower(writer.URI().Extension())
	var err error
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(writer, current.Image, &jpeg.Options{Quality: s.jpegQuality})
	default:
		err = png.Encode(writer, current.Image)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", writer.URI().Name(), err)
	}

	s.log.Info("ImageService", "image saved", map[string]interface{}{
		"uri":    writer.URI().Name(),
		"format": ext,
	})
	return nil
}

func (s *ImageService) install(frame *acquire.Frame, sourceURI string) *models.ImageData {
	data := &models.ImageData{
		Image:    frame.Image,
		Mat:      frame.Mat,
		Width:    frame.Mat.Cols(),
		Height:   frame.Mat.Rows(),
		Channels: frame.Mat.Channels(),
		Format:   frame.Format,
		Source:   frame.Source,
		LoadTime: time.Now(),
		Metadata: models.ImageMetadata{
			FileSize:  frame.ByteSize,
			SourceURI: sourceURI,
		},
	}
	s.session.Replace(data)
	return data
}

func (s *ImageService) Cleanup() {
	s.session.Clear()
}
