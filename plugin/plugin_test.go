//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//

package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/stacks-agent-go/tool"
)

func listOp(calls *int, seen *Args) Operation {
	return Operation{
		Name:        "list_things",
		Description: "List things, paginated.",
		InputSchema: ObjectSchema(
			map[string]*tool.Schema{
				"kind":   StringParam("Kind of thing."),
				"limit":  IntParam("Page size.", 20),
				"offset": IntParam("Page offset.", 0),
			},
			"kind",
		),
		Handler: func(_ context.Context, args Args) (any, error) {
			*calls++
			*seen = args
			return "ok", nil
		},
	}
}

func TestOperation_Declaration(t *testing.T) {
	t.Parallel()

	var calls int
	var seen Args
	tl := listOp(&calls, &seen).Tool()

	decl := tl.Declaration()
	require.Equal(t, "list_things", decl.Name)
	require.NotNil(t, decl.InputSchema)
	require.Equal(t, "object", decl.InputSchema.Type)
	require.Contains(t, decl.InputSchema.Required, "kind")
}

func TestCall_AppliesDefaults(t *testing.T) {
	t.Parallel()

	var calls int
	var seen Args
	tl := listOp(&calls, &seen).Tool()

	out, err := tl.Call(context.Background(), []byte(`{"kind":"x"}`))
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, 1, calls)

	require.Equal(t, 20, seen.Int("limit"))
	require.Equal(t, 0, seen.Int("offset"))
	require.Equal(t, "x", seen.String("kind"))
}

func TestCall_ExplicitValuesBeatDefaults(t *testing.T) {
	t.Parallel()

	var calls int
	var seen Args
	tl := listOp(&calls, &seen).Tool()

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"kind":"x","limit":5}`),
	)
	require.NoError(t, err)
	require.Equal(t, 5, seen.Int("limit"))
}

func TestCall_MissingRequiredRejectsBeforeHandler(t *testing.T) {
	t.Parallel()

	var calls int
	var seen Args
	tl := listOp(&calls, &seen).Tool()

	_, err := tl.Call(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.Equal(t, 0, calls, "handler must not run")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "kind", vErr.Param)
}

func TestCall_AggregatesAllViolations(t *testing.T) {
	t.Parallel()

	op := Operation{
		Name: "two_required",
		InputSchema: ObjectSchema(
			map[string]*tool.Schema{
				"a": StringParam("A."),
				"b": StringParam("B."),
			},
			"a", "b",
		),
		Handler: func(context.Context, Args) (any, error) {
			t.Error("handler must not run")
			return nil, nil
		},
	}

	_, err := op.Tool().Call(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), `"a"`)
	require.Contains(t, err.Error(), `"b"`)
}

func TestCall_TypeMismatchRejects(t *testing.T) {
	t.Parallel()

	var calls int
	var seen Args
	tl := listOp(&calls, &seen).Tool()

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"kind":"x","limit":"twenty"}`),
	)
	require.Error(t, err)
	require.Equal(t, 0, calls)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "limit", vErr.Param)
}

func TestCall_FractionalIntegerRejects(t *testing.T) {
	t.Parallel()

	var calls int
	var seen Args
	tl := listOp(&calls, &seen).Tool()

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"kind":"x","limit":20.5}`),
	)
	require.Error(t, err)
	require.Equal(t, 0, calls)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "limit", vErr.Param)

	// A whole-valued JSON number still passes.
	_, err = tl.Call(
		context.Background(),
		[]byte(`{"kind":"x","limit":25}`),
	)
	require.NoError(t, err)
	require.Equal(t, 25, seen.Int("limit"))
}

func TestCall_EmptyArgsAllowed(t *testing.T) {
	t.Parallel()

	op := Operation{
		Name:        "no_params",
		InputSchema: ObjectSchema(nil),
		Handler: func(context.Context, Args) (any, error) {
			return 7, nil
		},
	}

	out, err := op.Tool().Call(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 7, out)
}

func TestArgs_Query_NaturalRepresentations(t *testing.T) {
	t.Parallel()

	args := Args{
		"limit":      float64(20), // decoded JSON number
		"offset":     0,           // schema default
		"unanchored": false,
		"name":       "tok",
	}

	q := args.Query("limit", "offset", "unanchored", "name", "absent")
	require.Equal(t, "20", q.Get("limit"))
	require.Equal(t, "0", q.Get("offset"))
	require.Equal(t, "false", q.Get("unanchored"))
	require.Equal(t, "tok", q.Get("name"))
	require.False(t, q.Has("absent"))
}

func TestArgs_Uint64(t *testing.T) {
	t.Parallel()

	args := Args{
		"a": float64(1000),
		"b": "18446744073709551615",
		"c": float64(-1),
		"d": "not-a-number",
	}

	n, err := args.Uint64("a")
	require.NoError(t, err)
	require.Equal(t, uint64(1000), n)

	n, err = args.Uint64("b")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), n)

	_, err = args.Uint64("c")
	require.Error(t, err)

	_, err = args.Uint64("d")
	require.Error(t, err)

	_, err = args.Uint64("absent")
	require.Error(t, err)
}

func TestArgs_StringSlice(t *testing.T) {
	t.Parallel()

	args := Args{
		"decoded": []any{"a", "b"},
		"native":  []string{"c"},
		"mixed":   []any{"a", 1},
	}

	require.Equal(t, []string{"a", "b"}, args.StringSlice("decoded"))
	require.Equal(t, []string{"c"}, args.StringSlice("native"))
	require.Nil(t, args.StringSlice("mixed"))
	require.Nil(t, args.StringSlice("absent"))
}
