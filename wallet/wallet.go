//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package wallet defines the wallet collaborator the tool plugins
// depend on. Key management and transaction signing live outside this
// repo; plugins receive a Client and treat it as opaque.
package wallet

import (
	"context"

	"trpc.group/trpc-go/stacks-agent-go/stacks"
)

// TransferParams are the arguments for a fungible-token transfer.
type TransferParams struct {
	ContractAddress string
	ContractName    string
	AssetName       string
	Recipient       string
	Amount          uint64
	Memo            string
}

// TransferResult is the broadcast outcome of a signed transfer.
type TransferResult struct {
	TxID string `json:"txid"`
}

// Client is the injected wallet surface.
type Client interface {
	// Address returns the active wallet address.
	Address(ctx context.Context) (string, error)

	// Network returns the network the wallet operates on.
	Network(ctx context.Context) (stacks.Network, error)

	// Balance returns the wallet's STX balance in micro-STX.
	Balance(ctx context.Context) (uint64, error)

	// TransferFungibleToken signs and broadcasts a SIP-010 token
	// transfer.
	TransferFungibleToken(
		ctx context.Context,
		params TransferParams,
	) (TransferResult, error)
}
