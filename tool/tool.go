//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tool defines the tool contract every plugin in this repo
// implements and exposes to a hosting tool-invocation framework.
package tool

import (
	"context"
)

// Tool is the minimal surface a hosting framework needs to list a tool.
type Tool interface {
	// Declaration returns the metadata describing the tool.
	Declaration() *Declaration
}

// CallableTool defines the interface for tools that support calling
// operations.
type CallableTool interface {
	// Call calls the tool with the provided context and arguments.
	// Returns the result of execution or an error if the operation
	// fails.
	Call(ctx context.Context, jsonArgs []byte) (any, error)

	Tool
}

// Declaration describes the metadata of a tool, such as its name,
// description, and expected arguments.
type Declaration struct {
	// Name is the unique identifier of the tool.
	Name string `json:"name"`

	// Description explains the tool's purpose and functionality.
	Description string `json:"description"`

	// InputSchema defines the expected input for the tool in JSON
	// schema format.
	InputSchema *Schema `json:"inputSchema"`

	// OutputSchema defines the expected output for the tool in JSON
	// schema format.
	OutputSchema *Schema `json:"outputSchema,omitempty"`
}

// Schema represents the structure of JSON Schema used for defining
// arguments and responses. It follows the JSON Schema standard,
// supporting various types, properties, and validation rules.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array",
	// "string", "number").
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema.
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array.
	Items *Schema `json:"items,omitempty"`
	// Enum restricts a value to a fixed set.
	Enum []any `json:"enum,omitempty"`
	// Default is applied when an optional argument is absent.
	Default any `json:"default,omitempty"`
	// AdditionalProperties controls whether properties not defined
	// in Properties are allowed.
	AdditionalProperties any `json:"additionalProperties,omitempty"`
}
