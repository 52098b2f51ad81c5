//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

package stacks

import "fmt"

// ConfigurationError reports an unusable client configuration value,
// such as an unrecognized network selector.
type ConfigurationError struct {
	Setting string
	Value   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"stacks: unrecognized %s %q",
		e.Setting,
		e.Value,
	)
}

// UpstreamError reports a non-2xx response from the indexing API. Op
// carries the human-readable purpose of the failed operation and
// Status the upstream HTTP status text.
type UpstreamError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("stacks: %s", e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}
