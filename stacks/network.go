//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

package stacks

import (
	"fmt"
	"strings"
)

// Network selects which Stacks network an API client talks to.
type Network string

const (
	// NetworkMainnet is the production Stacks network.
	NetworkMainnet Network = "mainnet"
	// NetworkTestnet is the public test network.
	NetworkTestnet Network = "testnet"
	// NetworkDevnet is a local development network. It has no hosted
	// indexer, so it is valid in telemetry events but not for API
	// clients.
	NetworkDevnet Network = "devnet"
)

const (
	mainnetBaseURL = "https://api.hiro.so"
	testnetBaseURL = "https://api.testnet.hiro.so"
)

// ParseNetwork normalizes a network name.
func ParseNetwork(s string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(s))) {
	case NetworkMainnet:
		return NetworkMainnet, nil
	case NetworkTestnet:
		return NetworkTestnet, nil
	case NetworkDevnet:
		return NetworkDevnet, nil
	}
	return "", &ConfigurationError{Setting: "network", Value: s}
}

// APIURL resolves the indexing API base URL for a network.
func APIURL(network Network) (string, error) {
	switch network {
	case NetworkMainnet:
		return mainnetBaseURL, nil
	case NetworkTestnet:
		return testnetBaseURL, nil
	}
	return "", &ConfigurationError{
		Setting: "network",
		Value:   string(network),
	}
}

// SplitContractID splits a fully qualified contract id of the form
// "SP....ADDRESS.contract-name" into its address and name components.
func SplitContractID(contractID string) (address, name string, err error) {
	address, name, ok := strings.Cut(contractID, ".")
	if !ok || address == "" || name == "" {
		return "", "", fmt.Errorf(
			"stacks: malformed contract id %q: want ADDRESS.NAME",
			contractID,
		)
	}
	return address, name, nil
}
