package observability

import (
	"sync"
)

// Metrics provides basic in-memory counters for handled interactions.
type Metrics struct {
	mu               sync.Mutex
	interactionCount map[string]int64
	errorCount       map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		interactionCount: make(map[string]int64),
		errorCount:       make(map[string]int64),
	}
}

// RecordInteraction increments the counter for a handled interaction kind.
func (m *Metrics) RecordInteraction(kind string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interactionCount[kind]++
}

// RecordError increments error counters keyed by interaction kind and code.
func (m *Metrics) RecordError(kind, code string) {
	if m == nil {
		return
	}
	key := kind + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot returns copies of the interaction and error counters.
func (m *Metrics) Snapshot() (interactions, errs map[string]int64) {
	if m == nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	interactions = make(map[string]int64, len(m.interactionCount))
	for k, v := range m.interactionCount {
		interactions[k] = v
	}
	errs = make(map[string]int64, len(m.errorCount))
	for k, v := range m.errorCount {
		errs[k] = v
	}
	return interactions, errs
}
