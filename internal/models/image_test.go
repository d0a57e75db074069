package models

import (
	"testing"

	"image-workbench/internal/opencv/safe"

	"gocv.io/x/gocv"
)

func newTestBuffer(t *testing.T, rows, cols int) *ImageData {
	t.Helper()

	mat, err := safe.NewMat(rows, cols, gocv.MatTypeCV8UC3)
	if err != nil {
		t.Fatalf("NewMat: %v", err)
	}
	return &ImageData{
		Mat:      mat,
		Width:    cols,
		Height:   rows,
		Channels: 3,
	}
}

func TestSessionStartsEmpty(t *testing.T) {
	session := NewSession()
	if session.HasImage() {
		t.Fatal("new session should have no image")
	}
	if session.Current() != nil {
		t.Fatal("Current on empty session should be nil")
	}
}

func TestSessionReplaceClosesPrevious(t *testing.T) {
	session := NewSession()
	defer session.Shutdown()

	first := newTestBuffer(t, 4, 4)
	session.Replace(first)
	if !session.HasImage() {
		t.Fatal("session should have an image after Replace")
	}

	second := newTestBuffer(t, 8, 8)
	session.Replace(second)

	if first.Mat.IsValid() {
		t.Fatal("previous buffer should be closed after replacement")
	}
	if !second.Mat.IsValid() {
		t.Fatal("current buffer must stay valid")
	}
	if session.Current() != second {
		t.Fatal("Current should return the replacement buffer")
	}
}

func TestSessionClear(t *testing.T) {
	session := NewSession()
	buffer := newTestBuffer(t, 4, 4)
	session.Replace(buffer)

	session.Clear()
	if session.HasImage() {
		t.Fatal("session should be empty after Clear")
	}
	if buffer.Mat.IsValid() {
		t.Fatal("cleared buffer should be closed")
	}
}

func TestSessionLoadAfterFailureIsUnaffected(t *testing.T) {
	// A transform attempted with no image never reaches Replace, so a
	// later load must behave exactly like a first load.
	session := NewSession()
	defer session.Shutdown()

	if session.HasImage() {
		t.Fatal("precondition: empty session")
	}

	buffer := newTestBuffer(t, 4, 4)
	session.Replace(buffer)

	if !session.HasImage() || session.Current() != buffer {
		t.Fatal("load after a no-image failure should install the buffer normally")
	}
}
