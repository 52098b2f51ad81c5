//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package registry provides the pluggable tool provider registry.
//
// The intent is to make it easy for downstream repos to inject
// additional tool plugins by using anonymous imports:
//
//	import (
//		_ "your/module/stacks_plugins/nft"
//	)
//
// Each plugin package registers its factory in init().
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/tool"
	"trpc.group/trpc-go/stacks-agent-go/wallet"
)

// ToolProviderDeps are dependencies passed to tool provider
// factories.
type ToolProviderDeps struct {
	API    *stacks.Client
	Wallet wallet.Client
}

// PluginSpec describes one configured plugin instance.
type PluginSpec struct {
	Type   string
	Name   string
	Config *yaml.Node
}

// ToolProviderFactory creates the tools of one plugin.
type ToolProviderFactory func(
	deps ToolProviderDeps,
	spec PluginSpec,
) ([]tool.CallableTool, error)

var (
	mu sync.RWMutex

	toolFactories = map[string]ToolProviderFactory{}
)

// RegisterToolProvider registers a tool provider factory under
// typeName.
func RegisterToolProvider(typeName string, f ToolProviderFactory) error {
	name, err := validateType(typeName)
	if err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf(
			"registry: tool provider factory is nil: %s",
			name,
		)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := toolFactories[name]; ok {
		return fmt.Errorf(
			"registry: tool provider already registered: %s",
			name,
		)
	}
	toolFactories[name] = f
	return nil
}

// LookupToolProvider returns a tool provider factory by typeName.
func LookupToolProvider(typeName string) (ToolProviderFactory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	name := normalizeType(typeName)
	f, ok := toolFactories[name]
	return f, ok
}

// Types returns a sorted list of registered tool provider types.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()

	keys := make([]string, 0, len(toolFactories))
	for k := range toolFactories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeType(typeName string) string {
	return strings.ToLower(strings.TrimSpace(typeName))
}

func validateType(typeName string) (string, error) {
	name := normalizeType(typeName)
	if name == "" {
		return "", errors.New(
			"registry: tool provider type name is empty",
		)
	}
	return name, nil
}

// DecodeStrict decodes cfg into out and rejects unknown YAML fields.
func DecodeStrict(cfg *yaml.Node, out any) error {
	if out == nil {
		return errors.New("registry: nil decode target")
	}
	if cfg == nil || cfg.Kind == 0 {
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("registry: marshal config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return err
	}

	var extra any
	if err := dec.Decode(&extra); err == nil && extra != nil {
		return errors.New(
			"registry: multiple YAML documents are not supported",
		)
	}
	return nil
}
