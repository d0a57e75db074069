package transforms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Transform is a single image operation. Apply never mutates src and never
// retains it; the returned Mat is a fresh buffer owned by the caller.
type Transform interface {
	Name() string
	Apply(src gocv.Mat) (gocv.Mat, error)
}

// Params carries user-supplied transform parameters from the view layer.
type Params map[string]interface{}

// Int reads an integer parameter, accepting float64 for values that passed
// through JSON.
func (p Params) Int(key string) (int, error) {
	raw, exists := p[key]
	if !exists {
		return 0, fmt.Errorf("missing parameter: %s", key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("parameter %s has unsupported type %T", key, raw)
	}
}

func (p Params) String(key string) (string, error) {
	raw, exists := p[key]
	if !exists {
		return "", fmt.Errorf("missing parameter: %s", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s has unsupported type %T", key, raw)
	}
	return s, nil
}

// validateSource checks the buffer invariant shared by every transform.
func validateSource(src gocv.Mat) error {
	if src.Empty() {
		return fmt.Errorf("source buffer is empty")
	}
	if src.Channels() != 3 {
		return fmt.Errorf("source buffer must have 3 channels, got %d", src.Channels())
	}
	if src.Type() != gocv.MatTypeCV8UC3 {
		return fmt.Errorf("source buffer must be 8-bit 3-channel, got type %d", src.Type())
	}
	return nil
}

func closePlanes(planes []gocv.Mat) {
	for i := range planes {
		planes[i].Close()
	}
}
