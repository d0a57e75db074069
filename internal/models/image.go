package models

import (
	"image"
	"sync"
	"time"

	"image-workbench/internal/opencv/safe"
)

// ImageData is one session buffer with its display image and metadata.
// The Mat holds RGB samples; Image mirrors it for the canvas.
type ImageData struct {
	Image    image.Image
	Mat      *safe.Mat
	Width    int
	Height   int
	Channels int
	Format   string
	Source   string
	LoadTime time.Time
	Metadata ImageMetadata
}

// ImageMetadata is display- and logging-only information about a buffer.
type ImageMetadata struct {
	FileSize  int64
	SourceURI string
	Operation string
}

// Session owns the single current-buffer slot. The buffer is replaced
// wholesale by every transform; the previous buffer's native memory is
// released on replacement. A failed operation never reaches Replace, so
// the prior buffer survives any error.
type Session struct {
	mu      sync.RWMutex
	current *ImageData
}

func NewSession() *Session {
	return &Session{}
}

// HasImage reports whether a buffer has been loaded.
func (s *Session) HasImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current != nil
}

// Current returns the current buffer, or nil before the first load.
func (s *Session) Current() *ImageData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Replace installs a new current buffer and closes the previous one.
func (s *Session) Replace(img *ImageData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.Mat != nil {
		s.current.Mat.Close()
	}
	s.current = img
}

// Clear drops the current buffer, releasing its native memory.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.Mat != nil {
		s.current.Mat.Close()
	}
	s.current = nil
}

// Shutdown releases all resources.
func (s *Session) Shutdown() {
	s.Clear()
}
