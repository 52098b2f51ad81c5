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

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/stacks-agent-go/tool"
)

// ValidationError reports a missing or mistyped parameter. Validation
// happens before a handler runs, so a rejected call never reaches the
// network.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// Args holds validated, defaulted arguments for one invocation.
//
// Values come from decoded JSON (strings, float64 numbers, bools,
// []any, map[string]any) or from schema defaults, which may be native
// Go ints and bools. The accessors absorb both representations.
type Args map[string]any

// Has reports whether a value is present for key.
func (a Args) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// String returns the string value for key, or "" when absent.
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Int returns the integer value for key, or 0 when absent.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Uint64 returns the unsigned value for key. Decimal strings are
// accepted so callers can pass amounts too large for a JSON number.
func (a Args) Uint64(key string) (uint64, error) {
	switch v := a[key].(type) {
	case int:
		if v < 0 {
			return 0, &ValidationError{
				Param:  key,
				Reason: "must not be negative",
			}
		}
		return uint64(v), nil
	case float64:
		if v < 0 {
			return 0, &ValidationError{
				Param:  key,
				Reason: "must not be negative",
			}
		}
		return uint64(v), nil
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, &ValidationError{
				Param:  key,
				Reason: "not an unsigned integer",
			}
		}
		return n, nil
	}
	return 0, &ValidationError{Param: key, Reason: "not a number"}
}

// Bool returns the boolean value for key, or false when absent.
func (a Args) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// StringSlice returns the string-array value for key.
func (a Args) StringSlice(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

// Query renders the listed keys as URL query parameters using their
// natural textual representation. Absent keys are skipped.
func (a Args) Query(keys ...string) url.Values {
	values := url.Values{}
	for _, key := range keys {
		v, ok := a[key]
		if !ok || v == nil {
			continue
		}
		values.Set(key, queryValue(v))
	}
	return values
}

func queryValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// validateArgs checks raw arguments against the schema: every
// required parameter must be present, every present parameter must
// match its declared type, and absent optional parameters pick up
// their schema defaults. All violations are reported together.
func validateArgs(
	schema *tool.Schema,
	raw map[string]any,
) (Args, error) {
	args := make(Args, len(raw))
	for k, v := range raw {
		args[k] = v
	}
	if schema == nil {
		return args, nil
	}

	var result *multierror.Error
	for _, name := range schema.Required {
		if !args.Has(name) {
			result = multierror.Append(result, &ValidationError{
				Param:  name,
				Reason: "required parameter is missing",
			})
		}
	}

	for name, prop := range schema.Properties {
		if prop == nil {
			continue
		}
		v, ok := args[name]
		if !ok || v == nil {
			if prop.Default != nil {
				args[name] = prop.Default
			}
			continue
		}
		if err := checkType(name, prop, v); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return args, nil
}

func checkType(name string, prop *tool.Schema, v any) error {
	ok := true
	switch prop.Type {
	case "string":
		_, ok = v.(string)
	case "boolean":
		_, ok = v.(bool)
	case "integer", "number":
		switch v := v.(type) {
		case float64:
			// JSON numbers decode as float64; an integer property
			// must carry no fractional part.
			if prop.Type == "integer" {
				ok = v == math.Trunc(v)
			}
		case int, int64:
		case string:
			// Large integers arrive as decimal strings.
			if prop.Type != "integer" {
				ok = false
				break
			}
			_, err := strconv.ParseUint(v, 10, 64)
			ok = err == nil
		default:
			ok = false
		}
	case "array":
		switch v.(type) {
		case []any, []string:
		default:
			ok = false
		}
	case "object":
		_, ok = v.(map[string]any)
	}
	if !ok {
		return &ValidationError{
			Param:  name,
			Reason: "expected type " + prop.Type,
		}
	}
	return nil
}
