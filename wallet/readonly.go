//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trpc.group/trpc-go/stacks-agent-go/stacks"
)

// ErrSigningUnavailable is returned by transfer operations on a
// wallet that carries no signing keys.
var ErrSigningUnavailable = errors.New(
	"wallet: signing not available for read-only wallet",
)

// ReadOnly is a wallet.Client without signing capability. It serves
// hosts that only expose query tools: address and network come from
// configuration, the balance from the indexing API.
type ReadOnly struct {
	address string
	network stacks.Network
	api     *stacks.Client
}

// NewReadOnly creates a read-only wallet.
func NewReadOnly(
	address string,
	network stacks.Network,
	api *stacks.Client,
) (*ReadOnly, error) {
	if strings.TrimSpace(address) == "" {
		return nil, errors.New("wallet: empty address")
	}
	if api == nil {
		return nil, errors.New("wallet: nil api client")
	}
	return &ReadOnly{
		address: address,
		network: network,
		api:     api,
	}, nil
}

// Address implements Client.
func (w *ReadOnly) Address(_ context.Context) (string, error) {
	return w.address, nil
}

// Network implements Client.
func (w *ReadOnly) Network(_ context.Context) (stacks.Network, error) {
	return w.network, nil
}

// Balance implements Client. It queries the indexer for the current
// STX balance of the configured address.
func (w *ReadOnly) Balance(ctx context.Context) (uint64, error) {
	raw, err := w.api.Get(
		ctx,
		"Failed to get wallet balance",
		"/extended/v1/address/"+w.address+"/stx",
		nil,
	)
	if err != nil {
		return 0, err
	}

	var body struct {
		Balance string `json:"balance"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, fmt.Errorf("wallet: decode balance: %w", err)
	}
	balance, err := strconv.ParseUint(body.Balance, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("wallet: parse balance: %w", err)
	}
	return balance, nil
}

// TransferFungibleToken implements Client. It always fails: a
// read-only wallet cannot sign.
func (w *ReadOnly) TransferFungibleToken(
	_ context.Context,
	_ TransferParams,
) (TransferResult, error) {
	return TransferResult{}, ErrSigningUnavailable
}
