//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package plugin implements the operation-descriptor pattern shared
// by every tool plugin: a named operation with a parameter schema and
// a handler. Arguments are validated and defaulted against the schema
// before the handler runs, so a handler only ever sees complete,
// typed parameters — and no network call happens for a rejected
// invocation.
package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"trpc.group/trpc-go/stacks-agent-go/tool"
)

// HandlerFunc executes one operation with validated arguments.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Operation describes one callable operation of a plugin.
type Operation struct {
	// Name is the operation identifier, unique within a plugin.
	Name string
	// Description is what the calling model reads to decide whether
	// to use the operation.
	Description string
	// InputSchema declares and documents the parameters.
	InputSchema *tool.Schema
	// Handler performs the operation's single side effect.
	Handler HandlerFunc
}

// Tool wraps the operation as a CallableTool for a hosting framework.
func (op Operation) Tool() tool.CallableTool {
	return opTool{op: op}
}

type opTool struct {
	op Operation
}

func (t opTool) Declaration() *tool.Declaration {
	return &tool.Declaration{
		Name:        t.op.Name,
		Description: t.op.Description,
		InputSchema: t.op.InputSchema,
	}
}

func (t opTool) Call(ctx context.Context, jsonArgs []byte) (any, error) {
	raw := map[string]any{}
	if len(jsonArgs) > 0 {
		if err := json.Unmarshal(jsonArgs, &raw); err != nil {
			return nil, fmt.Errorf(
				"%s: unmarshal arguments: %w", t.op.Name, err,
			)
		}
	}

	args, err := validateArgs(t.op.InputSchema, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.op.Name, err)
	}
	if t.op.Handler == nil {
		return nil, errors.New(t.op.Name + ": no handler")
	}
	return t.op.Handler(ctx, args)
}

// Tools converts a list of operations into callable tools.
func Tools(ops []Operation) []tool.CallableTool {
	tools := make([]tool.CallableTool, 0, len(ops))
	for _, op := range ops {
		tools = append(tools, op.Tool())
	}
	return tools
}
