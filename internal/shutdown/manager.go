package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"image-workbench/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

const stepTimeout = 10 * time.Second

// Manager runs registered shutdown steps in reverse registration order,
// once, on signal or explicit request.
type Manager struct {
	mu         sync.Mutex
	names      []string
	components []Shutdownable
	log        logger.Logger
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.names = append(m.names, name)
	m.components = append(m.components, component)
}

// Listen installs the signal handler. The callback runs after the
// shutdown sequence so the caller can stop its event loop.
func (m *Manager) Listen(onShutdown func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
		if onShutdown != nil {
			onShutdown()
		}
	}()
}

// Shutdown executes every registered step once. Later registrations shut
// down first so dependents go before their dependencies.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.log.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		name := m.names[i]
		component := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
			m.log.Debug("ShutdownManager", "component shut down", map[string]interface{}{
				"component": name,
			})
		case <-time.After(stepTimeout):
			m.log.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": name,
			})
		}
	}

	m.log.Info("ShutdownManager", "shutdown sequence completed", nil)
}
