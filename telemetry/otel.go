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
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricToolCalls    = "stacks_agent.tool.calls"
	metricToolDuration = "stacks_agent.tool.duration"

	attrAction  = "stacks_agent.tool.action"
	attrNetwork = "stacks_agent.tool.network"
	attrStatus  = "stacks_agent.tool.status"

	statusOK    = "ok"
	statusError = "error"
)

// OTelSink records events as OpenTelemetry metrics: a call counter
// and a duration histogram, both labelled with action, network and
// status. Exporter wiring is the host's concern; a meter from a noop
// provider works and records nothing.
type OTelSink struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTelSink creates a sink on the given meter.
func NewOTelSink(meter metric.Meter) (*OTelSink, error) {
	calls, err := meter.Int64Counter(
		metricToolCalls,
		metric.WithDescription("Number of tool operation invocations."),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(
		metricToolDuration,
		metric.WithDescription("Tool operation duration."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &OTelSink{calls: calls, duration: duration}, nil
}

// Record implements Sink.
func (s *OTelSink) Record(ctx context.Context, event Event) error {
	status := statusOK
	if event.Error != "" {
		status = statusError
	}
	attrs := metric.WithAttributes(
		attribute.String(attrAction, event.Action),
		attribute.String(attrNetwork, string(event.Network)),
		attribute.String(attrStatus, status),
	)

	s.calls.Add(ctx, 1, attrs)
	if event.Duration > 0 {
		s.duration.Record(ctx, event.Duration.Seconds(), attrs)
	}
	return nil
}
