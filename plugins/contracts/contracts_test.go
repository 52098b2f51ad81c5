//
// Tencent is pleased to support the open source community by making
// stacks-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// stacks-agent-go is licensed under the Apache License Version 2.0.
//

package contracts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/stacks-agent-go/plugin"
	"trpc.group/trpc-go/stacks-agent-go/registry"
	"trpc.group/trpc-go/stacks-agent-go/stacks"
	"trpc.group/trpc-go/stacks-agent-go/tool"
	"trpc.group/trpc-go/stacks-agent-go/wallet"
)

type stubWallet struct {
	address string
}

func (w *stubWallet) Address(context.Context) (string, error) {
	return w.address, nil
}

func (w *stubWallet) Network(context.Context) (stacks.Network, error) {
	return stacks.NetworkTestnet, nil
}

func (w *stubWallet) Balance(context.Context) (uint64, error) {
	return 0, nil
}

func (w *stubWallet) TransferFungibleToken(
	context.Context,
	wallet.TransferParams,
) (wallet.TransferResult, error) {
	return wallet.TransferResult{}, wallet.ErrSigningUnavailable
}

func newTestAPI(t *testing.T, handler http.HandlerFunc) *stacks.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := stacks.New(
		stacks.NetworkTestnet,
		stacks.WithBaseURL(srv.URL),
		stacks.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return api
}

func toolByName(
	t *testing.T,
	tools []tool.CallableTool,
	name string,
) tool.CallableTool {
	t.Helper()

	for _, tl := range tools {
		if tl.Declaration().Name == name {
			return tl
		}
	}
	t.Fatalf("tool %s not found", name)
	return nil
}

func TestInit_RegistersProvider(t *testing.T) {
	f, ok := registry.LookupToolProvider(pluginType)
	require.True(t, ok)
	require.NotNil(t, f)
}

func TestNewTools_NilDepsFail(t *testing.T) {
	t.Parallel()

	_, err := newTools(registry.ToolProviderDeps{}, registry.PluginSpec{})
	require.Error(t, err)
}

func TestGetContractStatus_RequestShape(t *testing.T) {
	t.Parallel()

	var gotPath, gotContract string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContract = r.URL.Query().Get("contract_id")
		w.Write([]byte(`{"found":true}`))
	})
	tl := toolByName(
		t, Tools(api, &stubWallet{}), "get_contract_status",
	)

	out, err := tl.Call(
		context.Background(),
		[]byte(`{"contract_id":"SP1..X.foo"}`),
	)
	require.NoError(t, err)
	require.JSONEq(t, `{"found":true}`, string(out.(json.RawMessage)))
	require.Equal(t, "/extended/v2/smart-contracts/status", gotPath)
	require.Equal(t, "SP1..X.foo", gotContract)
}

func TestGetContractStatus_UpstreamFailure(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	tl := toolByName(
		t, Tools(api, &stubWallet{}), "get_contract_status",
	)

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"contract_id":"SP1..X.foo"}`),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to get contract status")

	var upErr *stacks.UpstreamError
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, http.StatusNotFound, upErr.StatusCode)
}

func TestGetContractStatus_MissingIDRejectsBeforeNetwork(t *testing.T) {
	t.Parallel()

	requests := 0
	api := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	})
	tl := toolByName(
		t, Tools(api, &stubWallet{}), "get_contract_status",
	)

	_, err := tl.Call(context.Background(), []byte(`{}`))
	require.Error(t, err)

	var vErr *plugin.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Equal(t, "contract_id", vErr.Param)
	require.Equal(t, 0, requests, "no network call expected")
}

func TestGetContract_Path(t *testing.T) {
	t.Parallel()

	var gotPath string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"source_code":"(ok true)"}`))
	})
	tl := toolByName(t, Tools(api, &stubWallet{}), "get_contract")

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"contract_id":"SP1..X.foo"}`),
	)
	require.NoError(t, err)
	require.Equal(t, "/extended/v1/contract/SP1..X.foo", gotPath)
}

func TestListContractsByTrait_PaginationDefaults(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"trait_abi": r.URL.Query().Get("trait_abi"),
			"limit":     r.URL.Query().Get("limit"),
			"offset":    r.URL.Query().Get("offset"),
		}
		w.Write([]byte(`{"results":[]}`))
	})
	tl := toolByName(
		t, Tools(api, &stubWallet{}), "list_contracts_by_trait",
	)

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"trait_abi":"{\"functions\":[]}"}`),
	)
	require.NoError(t, err)
	require.Equal(t, `{"functions":[]}`, gotQuery["trait_abi"])
	require.Equal(t, "20", gotQuery["limit"])
	require.Equal(t, "0", gotQuery["offset"])
}

func TestGetContractEvents_PaginationOverride(t *testing.T) {
	t.Parallel()

	var gotPath, gotLimit, gotOffset string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		gotOffset = r.URL.Query().Get("offset")
		w.Write([]byte(`{"results":[]}`))
	})
	tl := toolByName(
		t, Tools(api, &stubWallet{}), "get_contract_events",
	)

	_, err := tl.Call(
		context.Background(),
		[]byte(`{"contract_id":"SP1..X.foo","limit":50,"offset":100}`),
	)
	require.NoError(t, err)
	require.Equal(t, "/extended/v1/contract/SP1..X.foo/events", gotPath)
	require.Equal(t, "50", gotLimit)
	require.Equal(t, "100", gotOffset)
}

func TestCallReadOnly_SenderDefaultsToWalletAddress(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody struct {
		Sender    string   `json:"sender"`
		Arguments []string `json:"arguments"`
	}
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"okay":true}`))
	})
	tl := toolByName(
		t,
		Tools(api, &stubWallet{address: "SP2J6...XYZ"}),
		"call_read_only_function",
	)

	_, err := tl.Call(context.Background(), []byte(`{
		"contract_address": "SP1..X",
		"contract_name": "foo",
		"function_name": "get-count"
	}`))
	require.NoError(t, err)
	require.Equal(
		t, "/v2/contracts/call-read/SP1..X/foo/get-count", gotPath,
	)
	require.Equal(t, "SP2J6...XYZ", gotBody.Sender)
	require.Empty(t, gotBody.Arguments)
}

func TestCallReadOnly_ExplicitSenderWins(t *testing.T) {
	t.Parallel()

	var gotBody struct {
		Sender    string   `json:"sender"`
		Arguments []string `json:"arguments"`
	}
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"okay":true}`))
	})
	tl := toolByName(
		t,
		Tools(api, &stubWallet{address: "SP2J6...XYZ"}),
		"call_read_only_function",
	)

	_, err := tl.Call(context.Background(), []byte(`{
		"contract_address": "SP1..X",
		"contract_name": "foo",
		"function_name": "get-count",
		"function_args": ["0x0100"],
		"sender": "SP9..OTHER"
	}`))
	require.NoError(t, err)
	require.Equal(t, "SP9..OTHER", gotBody.Sender)
	require.Equal(t, []string{"0x0100"}, gotBody.Arguments)
}
