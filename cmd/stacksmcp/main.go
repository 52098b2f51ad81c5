//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package main starts an MCP STDIO server exposing the Stacks tools
// of every configured plugin to an MCP host.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"trpc.group/trpc-go/stacks-agent-go/log"
	"trpc.group/trpc-go/stacks-agent-go/registry"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/tool"
	"trpc.group/trpc-go/stacks-agent-go/wallet"

	// Built-in tool plugins register themselves in init().
	_ "trpc.group/trpc-go/stacks-agent-go/plugins/accounts"
	_ "trpc.group/trpc-go/stacks-agent-go/plugins/contracts"
	_ "trpc.group/trpc-go/stacks-agent-go/plugins/search"
	_ "trpc.group/trpc-go/stacks-agent-go/plugins/tokens"
)

const (
	serverName    = "stacks-agent-tools"
	serverVersion = "0.1.0"
)

type pluginCfg struct {
	Type   string    `yaml:"type"`
	Name   string    `yaml:"name"`
	Config yaml.Node `yaml:"config"`
}

type fileCfg struct {
	Network string      `yaml:"network"`
	Address string      `yaml:"address"`
	Plugins []pluginCfg `yaml:"plugins"`
}

func main() {
	configPath := flag.String(
		"config",
		"stacksmcp.yaml",
		"path to the server config file",
	)
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("stacksmcp: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	network, err := stacks.ParseNetwork(cfg.Network)
	if err != nil {
		return err
	}
	api, err := stacks.New(network)
	if err != nil {
		return err
	}
	w, err := wallet.NewReadOnly(cfg.Address, network, api)
	if err != nil {
		return err
	}

	tools, err := buildTools(
		registry.ToolProviderDeps{API: api, Wallet: w},
		cfg.Plugins,
	)
	if err != nil {
		return err
	}

	server := mcp.NewStdioServer(serverName, serverVersion)
	for _, t := range tools {
		t := t
		decl := t.Declaration()
		toolOpts := append(
			[]mcp.ToolOption{mcp.WithDescription(decl.Description)},
			schemaOptions(decl.InputSchema)...,
		)
		server.RegisterTool(
			mcp.NewTool(decl.Name, toolOpts...),
			func(ctx context.Context, req *mcp.CallToolRequest) (
				*mcp.CallToolResult,
				error,
			) {
				args, err := json.Marshal(req.Params.Arguments)
				if err != nil {
					return nil, err
				}
				result, err := t.Call(ctx, args)
				if err != nil {
					return nil, err
				}
				body, err := json.Marshal(result)
				if err != nil {
					return nil, err
				}
				return mcp.NewTextResult(string(body)), nil
			},
		)
	}

	log.Infof(
		"Serving %d Stacks tools on %s over STDIO",
		len(tools),
		network,
	)
	return server.Start()
}

func loadConfig(path string) (fileCfg, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileCfg{}, fmt.Errorf("read config: %w", err)
	}

	var cfg fileCfg
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return fileCfg{}, fmt.Errorf("decode config: %w", err)
	}

	if len(cfg.Plugins) == 0 {
		for _, typeName := range registry.Types() {
			cfg.Plugins = append(
				cfg.Plugins,
				pluginCfg{Type: typeName},
			)
		}
	}
	return cfg, nil
}

func buildTools(
	deps registry.ToolProviderDeps,
	specs []pluginCfg,
) ([]tool.CallableTool, error) {
	var tools []tool.CallableTool
	for _, spec := range specs {
		factory, ok := registry.LookupToolProvider(spec.Type)
		if !ok {
			return nil, fmt.Errorf(
				"unknown plugin type %q (registered: %s)",
				spec.Type,
				strings.Join(registry.Types(), ", "),
			)
		}
		built, err := factory(deps, registry.PluginSpec{
			Type:   spec.Type,
			Name:   spec.Name,
			Config: &spec.Config,
		})
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", spec.Type, err)
		}
		tools = append(tools, built...)
	}
	return tools, nil
}
