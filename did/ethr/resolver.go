// Copyright (C) 2025 ravindu-rev
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later


// Package ethr resolves did:ethr identifiers against the ERC-1056 Ethereum
// DID Registry by replaying the registry's change events for an identity.
package ethr

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/ravindu-rev/fi-ethr-resolver/did"
	"github.com/ravindu-rev/fi-ethr-resolver/internal/logger"
	"github.com/ravindu-rev/fi-ethr-resolver/internal/metrics"
)

// Client is the JSON-RPC surface a resolution needs. *ethclient.Client
// satisfies it.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Resolver resolves did:ethr identifiers against a single registry
// deployment. It is safe for concurrent use; every resolution owns its own
// accumulator.
type Resolver struct {
	client   Client
	registry common.Address
	log      logger.Logger
}

// NewResolver creates a resolver using the given client. An empty registry
// address selects the shared ERC-1056 deployment.
func NewResolver(client Client, registryAddress string) *Resolver {
	if registryAddress == "" {
		registryAddress = DefaultRegistryAddress
	}
	return &Resolver{
		client:   client,
		registry: common.HexToAddress(registryAddress),
		log:      logger.Default(),
	}
}

// Resolve resolves a did:ethr string against a JSON-RPC endpoint and returns
// the current DID document in the requested accept format.
func Resolve(ctx context.Context, didStr, providerURL, accept string) (*did.Document, error) {
	client, err := ethclient.DialContext(ctx, providerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", did.ErrRPCFailure, err)
	}
	defer client.Close()

	return NewResolver(client, "").Resolve(ctx, didStr, accept)
}

// Resolve resolves a did:ethr string and returns the current DID document.
func (r *Resolver) Resolve(ctx context.Context, didStr, accept string) (*did.Document, error) {
	start := time.Now()
	doc, _, _, err := r.ResolveWithMetadata(ctx, didStr, accept)
	metrics.RecordResolution(err, time.Since(start))
	return doc, err
}

// ResolveWithMetadata resolves a did:ethr string and additionally reports
// whether the identity is deactivated and the block number of its latest
// change.
func (r *Resolver) ResolveWithMetadata(ctx context.Context, didStr, accept string) (*did.Document, bool, *uint64, error) {
	docContext, err := did.ContextForAccept(accept)
	if err != nil {
		return nil, false, nil, fmt.Errorf("%w: %s", err, accept)
	}

	if !did.IsEthrDID(didStr) {
		return nil, false, nil, fmt.Errorf("%w: %s", did.ErrInvalidDID, didStr)
	}

	identifier := did.Strip0x(did.ExtractIdentifier(didStr))

	identity, err := parseIdentity(identifier)
	if err != nil {
		return nil, false, nil, err
	}

	doc := did.NewDocument(didStr, docContext)
	state := NewDocumentState(doc, "0x"+identifier)

	metrics.RecordRPCCall("eth_chainId")
	chainID, err := r.client.ChainID(ctx)
	if err != nil {
		return nil, false, nil, fmt.Errorf("%w: eth_chainId: %v", did.ErrRPCFailure, err)
	}
	state.SetChainID(chainID)

	logs, err := r.changeLogs(ctx, identity)
	if err != nil {
		return nil, false, nil, err
	}

	for _, lg := range logs {
		if lg.Address != r.registry {
			continue
		}
		state.SetVersion(lg.BlockNumber)

		event, err := DecodeEvent(lg)
		if err != nil {
			return nil, false, nil, err
		}
		if err := state.Apply(event); err != nil {
			return nil, false, nil, err
		}
	}

	resolved, deactivated, versionID := state.Finalize()
	return resolved, deactivated, versionID, nil
}

// parseIdentity converts a DID identifier into the registry's 20-byte
// identity address. Compressed public-key identifiers are reduced to the
// address they control.
func parseIdentity(identifier string) (common.Address, error) {
	if len(identifier) > 40 {
		addr, err := did.AddressFromPublicKey(identifier)
		if err != nil {
			return common.Address{}, fmt.Errorf("%w: %v", did.ErrInvalidDID, err)
		}
		return common.HexToAddress(addr), nil
	}
	return common.HexToAddress(identifier), nil
}

// changed reads the block number of the identity's most recent registry
// change.
func (r *Resolver) changed(ctx context.Context, identity common.Address) (*big.Int, error) {
	callData, err := registryABI.Pack("changed", identity)
	if err != nil {
		return nil, fmt.Errorf("%w: pack changed: %v", did.ErrDecodeFailure, err)
	}

	metrics.RecordRPCCall("eth_call")
	output, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &r.registry,
		Data: callData,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: changed: %v", did.ErrRPCFailure, err)
	}

	if len(output) == 0 {
		return new(big.Int), nil
	}

	var block *big.Int
	if err := registryABI.UnpackIntoInterface(&block, "changed", output); err != nil {
		return nil, fmt.Errorf("%w: unpack changed: %v", did.ErrDecodeFailure, err)
	}
	return block, nil
}

// changeLogs walks the identity's previousChange chain and returns its
// registry logs in chronological order. Every registry event carries the
// block number of the prior change, so one eth_getLogs call per change
// block is enough to follow the chain back to its head.
func (r *Resolver) changeLogs(ctx context.Context, identity common.Address) ([]types.Log, error) {
	previousChange, err := r.changed(ctx, identity)
	if err != nil {
		return nil, err
	}

	eventTopics := [][]common.Hash{{attributeChangedID, delegateChangedID, ownerChangedID}}

	var logs []types.Log
	for previousChange.Sign() > 0 {
		r.log.Debug("fetching registry logs",
			logger.String("identity", identity.Hex()),
			logger.String("block", previousChange.String()),
		)

		metrics.RecordRPCCall("eth_getLogs")
		batch, err := r.client.FilterLogs(ctx, ethereum.FilterQuery{
			Addresses: []common.Address{r.registry},
			Topics:    eventTopics,
			FromBlock: previousChange,
			ToBlock:   previousChange,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: getLogs: %v", did.ErrRPCFailure, err)
		}

		logs = append(append([]types.Log{}, batch...), logs...)

		var next *big.Int
		for _, lg := range batch {
			event, err := DecodeEvent(lg)
			if err != nil {
				return nil, err
			}
			prev := event.PreviousBlock()
			if prev.Cmp(previousChange) >= 0 {
				continue
			}
			if next == nil || prev.Cmp(next) < 0 {
				next = prev
			}
		}
		if next == nil {
			break
		}
		previousChange = next
	}

	return logs, nil
}
