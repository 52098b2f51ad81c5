//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package tokens registers the fungible-token (SIP-010) tools.
package tokens

import (
	"context"
	"errors"

	"trpc.group/trpc-go/stacks-agent-go/plugin"
	"trpc.group/trpc-go/stacks-agent-go/registry"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/telemetry"
	"trpc.group/trpc-go/stacks-agent-go/tool"
	"trpc.group/trpc-go/stacks-agent-go/wallet"
)

const pluginType = "tokens"

const (
	argAddress    = "address"
	argTokenID    = "token_id"
	argContractID = "contract_id"
	argAssetName  = "asset_name"
	argRecipient  = "recipient"
	argAmount     = "amount"
	argMemo       = "memo"
	argLimit      = "limit"
	argOffset     = "offset"
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
		return nil, errors.New("tokens: nil api client")
	}
	if deps.Wallet == nil {
		return nil, errors.New("tokens: nil wallet client")
	}
	return Tools(deps.API, deps.Wallet), nil
}

// Tools returns the fungible-token operations bound to one API client
// and wallet.
func Tools(api *stacks.Client, w wallet.Client) []tool.CallableTool {
	return plugin.Tools([]plugin.Operation{
		{
			Name: "get_ft_holders",
			Description: "List the holders of a fungible token with their " +
				"balances, paginated.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argTokenID: plugin.StringParam(
						"Token identifier " +
							"(contract id, optionally '::asset-name').",
					),
					argLimit: plugin.IntParam(
						"Maximum number of holders to return.", 20,
					),
					argOffset: plugin.IntParam(
						"Result offset for pagination.", 0,
					),
				},
				argTokenID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get token holders",
					"/extended/v1/tokens/ft/"+
						args.String(argTokenID)+"/holders",
					args.Query(argLimit, argOffset),
				)
			},
		},
		{
			Name: "get_ft_metadata",
			Description: "Get the SIP-010 metadata of a fungible token: " +
				"name, symbol, decimals, supply and token URI.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractID: plugin.StringParam(
						"Fully qualified token contract id.",
					),
				},
				argContractID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get token metadata",
					"/extended/v1/tokens/ft/"+
						args.String(argContractID),
					nil,
				)
			},
		},
		{
			Name: "get_ft_balance",
			Description: "Get one address's balance of one fungible token.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argAddress: plugin.StringParam(
						"Stacks address to look up.",
					),
					argTokenID: plugin.StringParam(
						"Token identifier " +
							"(contract id, optionally '::asset-name').",
					),
				},
				argAddress,
				argTokenID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.FungibleTokenBalance(
					ctx,
					args.String(argAddress),
					args.String(argTokenID),
				)
			},
		},
		{
			Name: "get_address_ft_balances",
			Description: "List all fungible-token holdings of an address, " +
				"paginated.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argAddress: plugin.StringParam(
						"Stacks address to look up.",
					),
					argLimit: plugin.IntParam(
						"Maximum number of assets to return.", 20,
					),
					argOffset: plugin.IntParam(
						"Result offset for pagination.", 0,
					),
				},
				argAddress,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.Get(
					ctx,
					"Failed to get address token balances",
					"/extended/v1/address/"+
						args.String(argAddress)+"/assets",
					args.Query(argLimit, argOffset),
				)
			},
		},
		{
			Name: "get_ft_info",
			Description: "Get combined information about a fungible token: " +
				"its metadata plus the deployment status of its contract.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractID: plugin.StringParam(
						"Fully qualified token contract id.",
					),
				},
				argContractID,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				return api.FungibleTokenInfo(
					ctx,
					args.String(argContractID),
				)
			},
		},
		{
			Name: "transfer_ft",
			Description: "Transfer an amount of a SIP-010 fungible token " +
				"from the active wallet to a recipient. Signs and " +
				"broadcasts through the wallet; returns the transaction id.",
			InputSchema: plugin.ObjectSchema(
				map[string]*tool.Schema{
					argContractID: plugin.StringParam(
						"Fully qualified token contract id " +
							"('ADDRESS.contract-name').",
					),
					argAssetName: plugin.StringParam(
						"Asset name defined by the token contract.",
					),
					argRecipient: plugin.StringParam(
						"Recipient Stacks address.",
					),
					argAmount: &tool.Schema{
						Type: "integer",
						Description: "Amount in the token's base units. " +
							"A decimal string is accepted for large values.",
					},
					argMemo: plugin.StringParam(
						"Optional memo attached to the transfer.",
					),
				},
				argContractID,
				argAssetName,
				argRecipient,
				argAmount,
			),
			Handler: func(ctx context.Context, args plugin.Args) (any, error) {
				contractID := args.String(argContractID)
				address, name, err := stacks.SplitContractID(contractID)
				if err != nil {
					return nil, &plugin.ValidationError{
						Param:  argContractID,
						Reason: "want 'ADDRESS.contract-name'",
					}
				}
				amount, err := args.Uint64(argAmount)
				if err != nil {
					return nil, err
				}

				return telemetry.WithTelemetry(
					ctx,
					telemetry.Event{
						Action:          "transfer_ft",
						Network:         api.Network(),
						ContractAddress: contractID,
					},
					func(ctx context.Context) (any, error) {
						return w.TransferFungibleToken(
							ctx,
							wallet.TransferParams{
								ContractAddress: address,
								ContractName:    name,
								AssetName:       args.String(argAssetName),
								Recipient:       args.String(argRecipient),
								Amount:          amount,
								Memo:            args.String(argMemo),
							},
						)
					},
				)
			},
		},
	})
}
