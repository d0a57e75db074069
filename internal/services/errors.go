package services

import "errors"

// ErrNoImage is returned when a transform or save is requested before any
// image has been loaded. Surfaced as a warning, never an error dialog.
var ErrNoImage = errors.New("no image loaded")
