//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package search registers the polymorphic id lookup tool.
package search

import (
	"context"
	"errors"

	"trpc.group/trpc-go/stacks-agent-go/plugin"
	"trpc.group/trpc-go/stacks-agent-go/registry"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/tool"
)

const pluginType = "search"

const (
	argID              = "id"
	argIncludeMetadata = "include_metadata"
)

func init() {
	if err := registry.RegisterToolProvider(pluginType, newTools); err != nil {
		panic(err)
	}
}

type providerCfg struct{}

func newTools(
	deps registry.ToolProviderDeps,
	spec registry.PluginSpec,
) ([]tool.CallableTool, error) {
	var cfg providerCfg
	if err := registry.DecodeStrict(spec.Config, &cfg); err != nil {
		return nil, err
	}
	if deps.API == nil {
		return nil, errors.New("search: nil api client")
	}
	return Tools(deps.API), nil
}

// Tools returns the search operations bound to one API client.
func Tools(api *stacks.Client) []tool.CallableTool {
	return plugin.Tools([]plugin.Operation{
		{
			Name: "search_by_id",
			Description: "Look up a single identifier across blocks, " +
				"transactions, contracts and accounts. Use this when you " +
				"have an id but do not know what kind of entity it names.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argID: plugin.StringParam(
						"Block hash, transaction id, contract id or " +
							"account address.",
					),
					argIncludeMetadata: plugin.BoolParam(
						"Also return the full entity, not just its kind.",
						false,
					),
				},
				argID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to search",
					"/extended/v1/search/"+args.String(argID),
					args.Query(argIncludeMetadata),
				)
			},
		},
	})
}
