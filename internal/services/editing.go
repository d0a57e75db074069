package services

import (
	"fmt"
	"time"

	"image-workbench/internal/logger"
	"image-workbench/internal/models"
	"image-workbench/internal/opencv/conversion"
	"image-workbench/internal/opencv/memory"
	"image-workbench/internal/opencv/safe"
	"image-workbench/internal/transforms"

	"gocv.io/x/gocv"
)

// EditingService applies named transforms to the current buffer. The
// transform runs on a borrowed view of the buffer and produces a fresh
// Mat; only a fully successful application reaches Replace.
type EditingService struct {
	session  *models.Session
	history  *models.History
	registry *transforms.Registry
	tracker  *memory.Manager
	log      logger.Logger
}

func NewEditingService(session *models.Session, history *models.History, registry *transforms.Registry, tracker *memory.Manager, log logger.Logger) *EditingService {
	return &EditingService{
		session:  session,
		history:  history,
		registry: registry,
		tracker:  tracker,
		log:      log,
	}
}

// Registry exposes the dispatch table for action enumeration.
func (s *EditingService) Registry() *transforms.Registry {
	return s.registry
}

// History exposes the edit record log.
func (s *EditingService) History() *models.History {
	return s.history
}

// Apply runs the named transform with the given parameters and replaces
// the current buffer with its output.
func (s *EditingService) Apply(name string, params transforms.Params) (*models.ImageData, error) {
	current := s.session.Current()
	if current == nil || current.Mat == nil {
		return nil, ErrNoImage
	}

	transform, err := s.registry.Create(name, params)
	if err != nil {
		return nil, fmt.Errorf("creating transform %s: %w", name, err)
	}

	start := time.Now()

	result, err := s.applyGuarded(transform, current.Mat.GetMat())
	if err != nil {
		return nil, err
	}

	mat, err := safe.Adopt(result, s.tracker, transform.Name())
	if err != nil {
		result.Close()
		return nil, fmt.Errorf("adopting %s output: %w", transform.Name(), err)
	}

	img, err := conversion.MatToImage(mat)
	if err != nil {
		mat.Close()
		return nil, fmt.Errorf("converting %s output: %w", transform.Name(), err)
	}

	duration := time.Since(start)

	data := &models.ImageData{
		Image:    img,
		Mat:      mat,
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
		Format:   current.Format,
		Source:   current.Source,
		LoadTime: current.LoadTime,
		Metadata: models.ImageMetadata{
			FileSize:  current.Metadata.FileSize,
			SourceURI: current.Metadata.SourceURI,
			Operation: transform.Name(),
		},
	}
	s.session.Replace(data)

	s.history.Append(models.EditRecord{
		Operation:  transform.Name(),
		Parameters: params,
		Duration:   duration,
		Width:      data.Width,
		Height:     data.Height,
		At:         time.Now(),
	})

	s.log.Info("EditingService", "transform applied", map[string]interface{}{
		"operation":   transform.Name(),
		"duration_ms": duration.Milliseconds(),
		"width":       data.Width,
		"height":      data.Height,
	})

	return data, nil
}

// applyGuarded converts OpenCV panics into errors so a bad native call
// cannot take down the event loop. On error the returned Mat is already
// closed; Close on an empty header is a no-op.
func (s *EditingService) applyGuarded(transform transforms.Transform, src gocv.Mat) (dst gocv.Mat, err error) {
	defer func() {
		if r := recover(); r != nil {
			dst.Close()
			err = fmt.Errorf("transform %s panicked: %v", transform.Name(), r)
		}
	}()

	dst, err = transform.Apply(src)
	if err != nil {
		dst.Close()
	}
	return dst, err
}

func (s *EditingService) Shutdown() {
	s.log.Debug("EditingService", "shutdown", map[string]interface{}{
		"operations_recorded": s.history.Len(),
	})
}
