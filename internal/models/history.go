package models

import (
	"sync"
	"time"
)

// EditRecord describes one applied operation. Records hold metadata only,
// never buffers; prior image data is not retained.
type EditRecord struct {
	Operation  string
	Parameters map[string]interface{}
	Duration   time.Duration
	Width      int
	Height     int
	At         time.Time
}

// History is a bounded FIFO of edit records.
type History struct {
	mu      sync.RWMutex
	records []EditRecord
	maxSize int
}

func NewHistory(maxSize int) *History {
	if maxSize < 1 {
		maxSize = 1
	}
	return &History{
		records: make([]EditRecord, 0, maxSize),
		maxSize: maxSize,
	}
}

func (h *History) Append(record EditRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record)
	if len(h.records) > h.maxSize {
		h.records = h.records[1:]
	}
}

// Records returns a copy of the stored records, oldest first.
func (h *History) Records() []EditRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]EditRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Latest returns the most recent record, or ok=false when empty.
func (h *History) Latest() (EditRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.records) == 0 {
		return EditRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.records)
}

// AverageDuration computes the mean operation time across stored records.
func (h *History) AverageDuration() time.Duration {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, record := range h.records {
		total += record.Duration
	}
	return total / time.Duration(len(h.records))
}
