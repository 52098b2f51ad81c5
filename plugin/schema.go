//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

package plugin

import "trpc.group/trpc-go/stacks-agent-go/tool"

// Schema construction helpers. Every operation in this repo declares
// a flat object schema, so the plugins build them from these rather
// than repeating the JSON-schema literals.

// ObjectSchema builds an object schema from named properties.
func ObjectSchema(
	properties map[string]*tool.Schema,
	required ...string,
) *tool.Schema {
	return &tool.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// StringParam declares a string parameter.
func StringParam(description string) *tool.Schema {
	return &tool.Schema{
		Type:        "string",
		Description: description,
	}
}

// IntParam declares an integer parameter with a default.
func IntParam(description string, def int) *tool.Schema {
	return &tool.Schema{
		Type:        "integer",
		Description: description,
		Default:     def,
	}
}

// OptionalIntParam declares an integer parameter without a default.
func OptionalIntParam(description string) *tool.Schema {
	return &tool.Schema{
		Type:        "integer",
		Description: description,
	}
}

// BoolParam declares a boolean parameter with a default.
func BoolParam(description string, def bool) *tool.Schema {
	return &tool.Schema{
		Type:        "boolean",
		Description: description,
		Default:     def,
	}
}

// StringArrayParam declares an array-of-strings parameter.
func StringArrayParam(description string) *tool.Schema {
	return &tool.Schema{
		Type:        "array",
		Description: description,
		Items:       &tool.Schema{Type: "string"},
	}
}
