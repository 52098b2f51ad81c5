//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/stacks-agent-go/tool"
)

func stubFactory(
	ToolProviderDeps,
	PluginSpec,
) ([]tool.CallableTool, error) {
	return nil, nil
}

func TestRegisterToolProvider_LookupRoundTrip(t *testing.T) {
	require.NoError(t, RegisterToolProvider("Stub-A", stubFactory))

	f, ok := LookupToolProvider("stub-a")
	require.True(t, ok)
	require.NotNil(t, f)

	// Lookup normalizes case and whitespace.
	f, ok = LookupToolProvider("  STUB-A ")
	require.True(t, ok)
	require.NotNil(t, f)
}

func TestRegisterToolProvider_DuplicateFails(t *testing.T) {
	require.NoError(t, RegisterToolProvider("stub-b", stubFactory))

	err := RegisterToolProvider("stub-b", stubFactory)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegisterToolProvider_EmptyNameFails(t *testing.T) {
	require.Error(t, RegisterToolProvider("  ", stubFactory))
}

func TestRegisterToolProvider_NilFactoryFails(t *testing.T) {
	require.Error(t, RegisterToolProvider("stub-c", nil))
}

func TestTypes_SortedListing(t *testing.T) {
	require.NoError(t, RegisterToolProvider("stub-z", stubFactory))
	require.NoError(t, RegisterToolProvider("stub-d", stubFactory))

	types := Types()
	require.Contains(t, types, "stub-d")
	require.Contains(t, types, "stub-z")
	require.IsIncreasing(t, types)
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	type cfg struct {
		Name string `yaml:"name"`
	}

	var node yaml.Node
	require.NoError(
		t, yaml.Unmarshal([]byte("name: hello\n"), &node),
	)

	var out cfg
	require.NoError(t, DecodeStrict(&node, &out))
	require.Equal(t, "hello", out.Name)
}

func TestDecodeStrict_UnknownFieldFails(t *testing.T) {
	t.Parallel()

	type cfg struct {
		Name string `yaml:"name"`
	}

	var node yaml.Node
	require.NoError(
		t,
		yaml.Unmarshal([]byte("name: x\nbogus: y\n"), &node),
	)

	var out cfg
	require.Error(t, DecodeStrict(&node, &out))
}

func TestDecodeStrict_NilConfigIsNoop(t *testing.T) {
	t.Parallel()

	var out struct{}
	require.NoError(t, DecodeStrict(nil, &out))
	require.Error(t, DecodeStrict(&yaml.Node{}, nil))
}
