//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package stacks provides a thin client for the Stacks blockchain
// indexing API.
//
// The client is a direct passthrough: one invocation issues one (or
// for the compound fungible-token lookups, a small fixed number of)
// outbound requests and returns the decoded JSON body verbatim. It
// performs no caching, no retries and no rate limiting; deadlines are
// whatever the injected http.Client enforces.
package stacks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"

	methodGet  = "GET"
	methodPost = "POST"
)

// Client talks to the Stacks indexing API of one network.
type Client struct {
	network    Network
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the network's default API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// New creates a client for the given network.
func New(network Network, opts ...Option) (*Client, error) {
	baseURL, err := APIURL(network)
	if err != nil {
		return nil, err
	}
	c := &Client{
		network:    network,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, errors.New("stacks: empty base url")
	}
	if c.httpClient == nil {
		return nil, errors.New("stacks: nil http client")
	}
	return c, nil
}

// Network returns the network this client is bound to.
func (c *Client) Network() Network {
	return c.network
}

// Get issues one GET request and returns the decoded JSON body as-is.
// op is the human-readable purpose embedded in upstream errors, for
// example "Failed to get contract status".
func (c *Client) Get(
	ctx context.Context,
	op string,
	path string,
	query url.Values,
) (json.RawMessage, error) {
	return c.do(ctx, op, methodGet, path, query, nil)
}

// CallReadOnlyFunction invokes a side-effect-free contract function
// through the node RPC endpoint and returns the raw response.
func (c *Client) CallReadOnlyFunction(
	ctx context.Context,
	contractID string,
	functionName string,
	functionArgs []string,
	senderAddress string,
) (json.RawMessage, error) {
	address, name, err := SplitContractID(contractID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(functionName) == "" {
		return nil, errors.New("stacks: empty function name")
	}
	if functionArgs == nil {
		functionArgs = []string{}
	}

	body, err := json.Marshal(struct {
		Sender    string   `json:"sender"`
		Arguments []string `json:"arguments"`
	}{
		Sender:    senderAddress,
		Arguments: functionArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("stacks: marshal request: %w", err)
	}

	path := fmt.Sprintf(
		"/v2/contracts/call-read/%s/%s/%s",
		address,
		name,
		functionName,
	)
	return c.do(
		ctx,
		"Failed to call read-only function",
		methodPost,
		path,
		nil,
		body,
	)
}

// FungibleTokenBalance looks up one fungible-token balance for an
// address. The indexer only exposes the full balance sheet, so the
// result is reshaped to a single-token object.
func (c *Client) FungibleTokenBalance(
	ctx context.Context,
	address string,
	tokenID string,
) (map[string]any, error) {
	raw, err := c.Get(
		ctx,
		"Failed to get fungible token balance",
		"/extended/v1/address/"+address+"/balances",
		nil,
	)
	if err != nil {
		return nil, err
	}

	var balances struct {
		FungibleTokens map[string]map[string]any `json:"fungible_tokens"`
	}
	if err := json.Unmarshal(raw, &balances); err != nil {
		return nil, fmt.Errorf("stacks: decode balances: %w", err)
	}

	entry, ok := balances.FungibleTokens[tokenID]
	if !ok {
		// The address simply holds none of this token.
		entry = map[string]any{"balance": "0"}
	}
	merged := map[string]any{
		"address":  address,
		"token_id": tokenID,
	}
	for k, v := range entry {
		merged[k] = v
	}
	return merged, nil
}

// FungibleTokenInfo merges token metadata with the token contract's
// deployment status into one object. Either constituent failure
// aborts the whole lookup.
func (c *Client) FungibleTokenInfo(
	ctx context.Context,
	contractID string,
) (map[string]any, error) {
	metadata, err := c.Get(
		ctx,
		"Failed to get fungible token metadata",
		"/extended/v1/tokens/ft/"+contractID,
		nil,
	)
	if err != nil {
		return nil, err
	}

	status, err := c.Get(
		ctx,
		"Failed to get contract status",
		"/extended/v2/smart-contracts/status",
		url.Values{"contract_id": []string{contractID}},
	)
	if err != nil {
		return nil, err
	}

	var meta, st any
	if err := json.Unmarshal(metadata, &meta); err != nil {
		return nil, fmt.Errorf("stacks: decode metadata: %w", err)
	}
	if err := json.Unmarshal(status, &st); err != nil {
		return nil, fmt.Errorf("stacks: decode status: %w", err)
	}
	return map[string]any{
		"contract_id": contractID,
		"metadata":    meta,
		"contract":    st,
	}, nil
}

func (c *Client) do(
	ctx context.Context,
	op string,
	method string,
	path string,
	query url.Values,
	body []byte,
) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("stacks: parse base url: %w", err)
	}
	u = u.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("stacks: new request: %w", err)
	}
	req.Header.Set(headerAccept, contentTypeJSON)
	if len(body) > 0 {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stacks: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stacks: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf(
			"stacks: invalid JSON response for %s", u.Path,
		)
	}
	return json.RawMessage(raw), nil
}
