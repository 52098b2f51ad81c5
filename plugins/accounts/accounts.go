//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package accounts registers the account and wallet query tools.
package accounts

import (
	"context"
	"errors"

	"trpc.group/trpc-go/stacks-agent-go/plugin"
	"trpc.group/trpc-go/stacks-agent-go/registry"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/tool"
	"trpc.group/trpc-go/stacks-agent-go/wallet"
)

const pluginType = "accounts"

const (
	argAddress     = "address"
	argUnanchored  = "unanchored"
	argUntilBlock  = "until_block"
	argBlockHeight = "block_height"
	argBlockHash   = "block_hash"
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
		return nil, errors.New("accounts: nil api client")
	}
	if deps.Wallet == nil {
		return nil, errors.New("accounts: nil wallet client")
	}
	return Tools(deps.API, deps.Wallet), nil
}

// WalletInfo is the reshaped result of get_wallet_info.
type WalletInfo struct {
	Address string         `json:"address"`
	Network stacks.Network `json:"network"`
	Balance uint64         `json:"balance"`
}

// Tools returns the account query operations bound to one API client
// and wallet.
func Tools(api *stacks.Client, w wallet.Client) []tool.CallableTool {
	unanchoredParam := func() *tool.Schema {
		return plugin.BoolParam(
			"Include balances from not-yet-finalized "+
				"(unanchored) microblocks.",
			false,
		)
	}

	return plugin.Tools([]plugin.Operation{
		{
			Name: "get_account_balance",
			Description: "Get the aggregate balances of an address: STX " +
				"plus all fungible and non-fungible token holdings.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argAddress: plugin.StringParam(
						"Stacks address to look up.",
					),
					argUnanchored: unanchoredParam(),
				},
				argAddress,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get account balance",
					"/extended/v1/address/"+
						args.String(argAddress)+"/balances",
					args.Query(argUnanchored),
				)
			},
		},
		{
			Name: "get_account_stx_balance",
			Description: "Get the STX balance of an address, optionally at " +
				"a historical block height.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argAddress: plugin.StringParam(
						"Stacks address to look up.",
					),
					argUnanchored: unanchoredParam(),
					argUntilBlock: plugin.OptionalIntParam(
						"Return the balance as of this block height.",
					),
				},
				argAddress,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get STX balance",
					"/extended/v1/address/"+
						args.String(argAddress)+"/stx",
					args.Query(argUnanchored, argUntilBlock),
				)
			},
		},
		{
			Name: "get_account_nonces",
			Description: "Get the nonce state of an address: last executed " +
				"nonce, possible next nonce and any detected gaps. " +
				"Optionally at a historical block.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argAddress: plugin.StringParam(
						"Stacks address to look up.",
					),
					argBlockHeight: plugin.OptionalIntParam(
						"Return nonce state as of this block height.",
					),
					argBlockHash: plugin.StringParam(
						"Return nonce state as of this block hash.",
					),
				},
				argAddress,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get account nonces",
					"/extended/v1/address/"+
						args.String(argAddress)+"/nonces",
					args.Query(argBlockHeight, argBlockHash),
				)
			},
		},
		{
			Name: "get_wallet_info",
			Description: "Get the active wallet's address, network and STX " +
				"balance. Use this to find out which account the agent is " +
				"operating as.",
			InputSchema: plugin.ObjectSchema(nil),
			Handler: func(ctx context.Context, _ plugin.Args) (any, error) {
				address, err := w.Address(ctx)
				if err != nil {
					return nil, err
				}
				network, err := w.Network(ctx)
				if err != nil {
					return nil, err
				}
				balance, err := w.Balance(ctx)
				if err != nil {
					return nil, err
				}
				return WalletInfo{
					Address: address,
					Network: network,
					Balance: balance,
				}, nil
			},
		},
	})
}
