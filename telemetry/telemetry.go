//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry records best-effort usage events for the tool
// plugins. Recording is strictly fire-and-forget: a sink failure is
// logged at debug level and discarded, and never reaches the caller
// of the instrumented operation.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/stacks-agent-go/log"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
)

// Event is one recorded telemetry event.
type Event struct {
	// ID uniquely identifies the event. Filled in by Record when
	// empty.
	ID string `json:"id,omitempty"`
	// Action names the operation, for example "get_contract_status".
	Action string `json:"action"`
	// Network is the network the operation ran against, if any.
	Network stacks.Network `json:"network,omitempty"`
	// ContractAddress is the contract involved, if any.
	ContractAddress string `json:"contract_address,omitempty"`
	// Duration is the wall-clock duration of the operation.
	Duration time.Duration `json:"duration,omitempty"`
	// Error is the failure message of the operation, if it failed.
	Error string `json:"error,omitempty"`
	// Metadata carries free-form extra fields.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Sink consumes telemetry events. Implementations may deliver them
// anywhere; delivery guarantees are explicitly out of scope and a
// returned error is only ever logged.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

var (
	sinkMu sync.RWMutex
	sink   Sink = logSink{}
)

// SetSink replaces the process-wide telemetry sink. A nil sink
// restores the default log sink.
func SetSink(s Sink) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if s == nil {
		sink = logSink{}
		return
	}
	sink = s
}

func currentSink() Sink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink
}

// Record records one event. It never fails and never panics,
// whatever the configured sink does.
func Record(ctx context.Context, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Debugf("telemetry: sink panic: %v", r)
		}
	}()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if err := currentSink().Record(ctx, event); err != nil {
		log.Debugf(
			"telemetry: record %s: %v", event.Action, err,
		)
	}
}

// WithTelemetry runs op, measuring its wall-clock duration and
// recording success or failure under the template event. The result
// and error of op are returned unchanged.
func WithTelemetry[T any](
	ctx context.Context,
	event Event,
	op func(ctx context.Context) (T, error),
) (T, error) {
	start := time.Now()
	result, err := op(ctx)

	event.Duration = time.Since(start)
	if err != nil {
		event.Error = err.Error()
	}
	Record(ctx, event)

	return result, err
}

// logSink writes events to the package logger. It is the default
// sink.
type logSink struct{}

func (logSink) Record(_ context.Context, event Event) error {
	log.Infof(
		"telemetry: action=%s network=%s contract=%s duration=%s error=%q",
		event.Action,
		event.Network,
		event.ContractAddress,
		event.Duration,
		event.Error,
	)
	return nil
}
