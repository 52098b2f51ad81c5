//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

package telemetry

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrTimerNotStarted is returned by End for a label without a
// matching Start.
var ErrTimerNotStarted = errors.New("telemetry: timer not started")

// PerformanceMonitor measures named durations. Starting a label twice
// overwrites the earlier start, so concurrent measurements must use
// distinct labels.
type PerformanceMonitor struct {
	mu     sync.Mutex
	starts map[string]time.Time
}

// NewPerformanceMonitor creates an empty monitor.
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		starts: make(map[string]time.Time),
	}
}

// Start records the start time for label. Last start wins.
func (m *PerformanceMonitor) Start(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts[label] = time.Now()
}

// End returns the elapsed time since Start(label) and clears the
// label.
func (m *PerformanceMonitor) End(label string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start, ok := m.starts[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTimerNotStarted, label)
	}
	delete(m.starts, label)

	elapsed := time.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, nil
}

var defaultMonitor = NewPerformanceMonitor()

// StartTimer starts a label on the process-wide monitor.
func StartTimer(label string) {
	defaultMonitor.Start(label)
}

// EndTimer ends a label on the process-wide monitor.
func EndTimer(label string) (time.Duration, error) {
	return defaultMonitor.End(label)
}
