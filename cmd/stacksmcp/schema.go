//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

package main

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"trpc.group/trpc-go/stacks-agent-go/tool"
)

// schemaOptions converts a tool input schema into MCP tool options so
// the host sees each parameter's type, description, requiredness and
// default instead of an empty schema.
func schemaOptions(s *tool.Schema) []mcp.ToolOption {
	if s == nil {
		return nil
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	// Map iteration order is random; sort so tools/list is stable.
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := make([]mcp.ToolOption, 0, len(names))
	for _, name := range names {
		prop := s.Properties[name]

		propOpts := []mcp.PropertyOption{
			mcp.Description(prop.Description),
		}
		if required[name] {
			propOpts = append(propOpts, mcp.Required())
		}
		if prop.Default != nil {
			propOpts = append(propOpts, mcp.Default(prop.Default))
		}

		switch prop.Type {
		case "integer":
			opts = append(opts, mcp.WithInteger(name, propOpts...))
		case "number":
			opts = append(opts, mcp.WithNumber(name, propOpts...))
		case "boolean":
			opts = append(opts, mcp.WithBoolean(name, propOpts...))
		case "array":
			propOpts = append(propOpts, mcp.Items(itemSchema(prop.Items)))
			opts = append(opts, mcp.WithArray(name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(name, propOpts...))
		}
	}
	return opts
}

func itemSchema(items *tool.Schema) *openapi3.Schema {
	itemType := openapi3.TypeString
	if items != nil && items.Type != "" {
		itemType = items.Type
	}
	return &openapi3.Schema{Type: &openapi3.Types{itemType}}
}
