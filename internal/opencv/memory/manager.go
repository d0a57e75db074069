package memory

import (
	"sync"
	"time"

	"image-workbench/internal/logger"
)

// Manager accounts for native Mat memory held by the session. Buffers are
// registered when adopted and deregistered when replaced, so leaks show up
// as a growing active count in the periodic metrics log.
type Manager struct {
	mu          sync.RWMutex
	allocations map[uint64]allocationRecord
	allocCount  int64
	deallocCnt  int64
	usedMemory  int64
	log         logger.Logger
}

type allocationRecord struct {
	Size      int64
	Tag       string
	CreatedAt time.Time
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		allocations: make(map[uint64]allocationRecord),
		log:         log,
	}
}

func (m *Manager) TrackAllocation(id uint64, size int64, tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.allocations[id] = allocationRecord{Size: size, Tag: tag, CreatedAt: time.Now()}
	m.allocCount++
	m.usedMemory += size
}

func (m *Manager) TrackDeallocation(id uint64, tag string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, exists := m.allocations[id]
	if !exists {
		if m.log != nil {
			m.log.Warning("MemoryManager", "deallocation of untracked Mat", map[string]interface{}{
				"id":  id,
				"tag": tag,
			})
		}
		return
	}

	delete(m.allocations, id)
	m.deallocCnt++
	m.usedMemory -= record.Size
}

// GetStats returns allocation count, deallocation count and bytes in use.
func (m *Manager) GetStats() (int64, int64, int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.allocCount, m.deallocCnt, m.usedMemory
}

// ActiveMats returns the number of live tracked buffers.
func (m *Manager) ActiveMats() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.allocations)
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.log != nil && len(m.allocations) > 0 {
		m.log.Warning("MemoryManager", "Mats still tracked at shutdown", map[string]interface{}{
			"active":     len(m.allocations),
			"used_bytes": m.usedMemory,
		})
	}

	m.allocations = make(map[uint64]allocationRecord)
}
