package transforms

import (
	"fmt"
	"image"
	"sort"
	"sync"
)

// Factory builds a Transform from user-supplied parameters.
type Factory func(params Params) (Transform, error)

// Registry is the dispatch table from action identifiers to transform
// factories. Parameter gathering stays in the view layer; the registry
// only validates and constructs.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in transform set.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
	}

	r.Register("channel", func(params Params) (Transform, error) {
		name, err := params.String("channel")
		if err != nil {
			return nil, err
		}
		channel, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		return NewChannelExtract(channel)
	})

	r.Register("red_mask", func(params Params) (Transform, error) {
		threshold, err := params.Int("threshold")
		if err != nil {
			return nil, err
		}
		return NewRedMask(threshold)
	})

	r.Register("sharpen", func(params Params) (Transform, error) {
		return NewSharpen(), nil
	})

	r.Register("rectangle", func(params Params) (Transform, error) {
		x1, err := params.Int("x1")
		if err != nil {
			return nil, err
		}
		y1, err := params.Int("y1")
		if err != nil {
			return nil, err
		}
		x2, err := params.Int("x2")
		if err != nil {
			return nil, err
		}
		y2, err := params.Int("y2")
		if err != nil {
			return nil, err
		}
		return NewRectangleOutline(image.Point{X: x1, Y: y1}, image.Point{X: x2, Y: y2})
	})

	return r
}

func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
}

// Create builds the named transform from params.
func (r *Registry) Create(name string, params Params) (Transform, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// Names lists registered action identifiers in stable order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
