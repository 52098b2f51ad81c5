//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package contracts registers the smart-contract query tools.
package contracts

import (
	"context"
	"errors"
	"net/url"

	"trpc.group/trpc-go/stacks-agent-go/plugin"
	"trpc.group/trpc-go/stacks-agent-go/registry"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/telemetry"
	"trpc.group/trpc-go/stacks-agent-go/tool"
	"trpc.group/trpc-go/stacks-agent-go/wallet"
)

const pluginType = "contracts"

const (
	argContractID      = "contract_id"
	argContractAddress = "contract_address"
	argContractName    = "contract_name"
	argFunctionName    = "function_name"
	argFunctionArgs    = "function_args"
	argSender          = "sender"
	argTraitABI        = "trait_abi"
	argLimit           = "limit"
	argOffset          = "offset"
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
		return nil, errors.New("contracts: nil api client")
	}
	if deps.Wallet == nil {
		return nil, errors.New("contracts: nil wallet client")
	}
	return Tools(deps.API, deps.Wallet), nil
}

// Tools returns the contract query operations bound to one API
// client and wallet.
func Tools(api *stacks.Client, w wallet.Client) []tool.CallableTool {
	return plugin.Tools([]plugin.Operation{
		{
			Name: "get_contract_status",
			Description: "Get the deployment status of a smart contract. " +
				"Use this to check whether a contract id exists and is live " +
				"before querying or calling it.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractID: plugin.StringParam(
						"Fully qualified contract id " +
							"(e.g. 'SP000000000000000000002Q6VF78.pox').",
					),
				},
				argContractID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get contract status",
					"/extended/v2/smart-contracts/status",
					url.Values{
						argContractID: []string{args.String(argContractID)},
					},
				)
			},
		},
		{
			Name: "get_contract",
			Description: "Get full details of a smart contract, including " +
				"its source code and interface description.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractID: plugin.StringParam(
						"Fully qualified contract id.",
					),
				},
				argContractID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get contract",
					"/extended/v1/contract/"+args.String(argContractID),
					nil,
				)
			},
		},
		{
			Name: "list_contracts_by_trait",
			Description: "Find deployed contracts implementing a trait ABI " +
				"(a structural interface description). Returns a paginated " +
				"list. Use this to discover e.g. all SIP-010 tokens.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argTraitABI: plugin.StringParam(
						"JSON trait ABI describing the functions a " +
							"matching contract must implement.",
					),
					argLimit: plugin.IntParam(
						"Maximum number of contracts to return.", 20,
					),
					argOffset: plugin.IntParam(
						"Result offset for pagination.", 0,
					),
				},
				argTraitABI,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to list contracts by trait",
					"/extended/v1/contract/by_trait",
					args.Query(argTraitABI, argLimit, argOffset),
				)
			},
		},
		{
			Name: "get_contract_events",
			Description: "List events emitted by a smart contract, newest " +
				"first, paginated.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractID: plugin.StringParam(
						"Fully qualified contract id.",
					),
					argLimit: plugin.IntParam(
						"Maximum number of events to return.", 20,
					),
					argOffset: plugin.IntParam(
						"Result offset for pagination.", 0,
					),
				},
				argContractID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get contract events",
					"/extended/v1/contract/"+
						args.String(argContractID)+"/events",
					args.Query(argLimit, argOffset),
				)
			},
		},
		{
			Name: "call_read_only_function",
			Description: "Call a read-only (side-effect-free) function of a " +
				"smart contract without a signed transaction. The sender " +
				"defaults to the active wallet address.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractAddress: plugin.StringParam(
						"Address of the contract deployer.",
					),
					argContractName: plugin.StringParam(
						"Name of the contract.",
					),
					argFunctionName: plugin.StringParam(
						"Name of the read-only function to call.",
					),
					argFunctionArgs: plugin.StringArrayParam(
						"Hex-encoded Clarity values passed as arguments.",
					),
					argSender: plugin.StringParam(
						"Sender address for the call. Defaults to the " +
							"active wallet address.",
					),
				},
				argContractAddress,
				argContractName,
				argFunctionName,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				sender := args.String(argSender)
				if !args.Has(argSender) {
					var err error
					sender, err = w.Address(ctx)
					if err != nil {
						return nil, err
					}
				}
				contractID := args.String(argContractAddress) +
					"." + args.String(argContractName)

				return telemetry.WithTelemetry(
					ctx,
					telemetry.Event{
						Action:          "call_read_only_function",
						Network:         api.Network(),
						ContractAddress: contractID,
					},
					func(ctx context.Context) (any, error) {
						return api.CallReadOnlyFunction(
							ctx,
							contractID,
							args.String(argFunctionName),
							args.StringSlice(argFunctionArgs),
							sender,
						)
					},
				)
			},
		},
	})
}
