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


package ethr

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ravindu-rev/fi-ethr-resolver/did"
)

// Canonical signatures of the ERC-1056 registry events
const (
	DIDOwnerChangedTopic     = "DIDOwnerChanged(address,address,uint256)"
	DIDDelegateChangedTopic  = "DIDDelegateChanged(address,bytes32,bytes32,address,uint256,uint256)"
	DIDAttributeChangedTopic = "DIDAttributeChanged(address,bytes32,bytes,uint256,uint256)"
)

var (
	ownerChangedID     = crypto.Keccak256Hash([]byte(DIDOwnerChangedTopic))
	delegateChangedID  = crypto.Keccak256Hash([]byte(DIDDelegateChangedTopic))
	attributeChangedID = crypto.Keccak256Hash([]byte(DIDAttributeChangedTopic))
)

// Event is a decoded registry change event.
type Event interface {
	// PreviousBlock returns the block number of the prior change affecting
	// the same identity; zero terminates the chain.
	PreviousBlock() *big.Int
}

// OwnerChanged is an ERC-1056 DIDOwnerChanged event.
type OwnerChanged struct {
	Identity       common.Address
	Owner          common.Address
	PreviousChange *big.Int
}

func (e *OwnerChanged) PreviousBlock() *big.Int { return e.PreviousChange }

// DelegateChanged is an ERC-1056 DIDDelegateChanged event. Name is decoded
// but not used during document construction.
type DelegateChanged struct {
	Identity       common.Address
	DelegateType   [32]byte
	Name           [32]byte
	Delegate       common.Address
	ValidTo        *big.Int
	PreviousChange *big.Int
}

func (e *DelegateChanged) PreviousBlock() *big.Int { return e.PreviousChange }

// AttributeChanged is an ERC-1056 DIDAttributeChanged event.
type AttributeChanged struct {
	Identity       common.Address
	Name           [32]byte
	Value          []byte
	ValidTo        *big.Int
	PreviousChange *big.Int
}

func (e *AttributeChanged) PreviousBlock() *big.Int { return e.PreviousChange }

func hasTopic(topics []common.Hash, id common.Hash) bool {
	for _, topic := range topics {
		if topic == id {
			return true
		}
	}
	return false
}

// IsOwnerChanged reports whether the topic vector carries the
// DIDOwnerChanged signature.
func IsOwnerChanged(topics []common.Hash) bool {
	return hasTopic(topics, ownerChangedID)
}

// IsDelegateChanged reports whether the topic vector carries the
// DIDDelegateChanged signature.
func IsDelegateChanged(topics []common.Hash) bool {
	return hasTopic(topics, delegateChangedID)
}

// IsAttributeChanged reports whether the topic vector carries the
// DIDAttributeChanged signature.
func IsAttributeChanged(topics []common.Hash) bool {
	return hasTopic(topics, attributeChangedID)
}

// DecodeEvent decodes a registry log into its typed event. A log whose
// topics match none of the known signatures yields did.ErrUnknownTopic.
func DecodeEvent(log types.Log) (Event, error) {
	switch {
	case IsAttributeChanged(log.Topics):
		var ev AttributeChanged
		if err := registryContract.UnpackLog(&ev, "DIDAttributeChanged", log); err != nil {
			return nil, fmt.Errorf("%w: DIDAttributeChanged: %v", did.ErrDecodeFailure, err)
		}
		return &ev, nil

	case IsDelegateChanged(log.Topics):
		var ev DelegateChanged
		if err := registryContract.UnpackLog(&ev, "DIDDelegateChanged", log); err != nil {
			return nil, fmt.Errorf("%w: DIDDelegateChanged: %v", did.ErrDecodeFailure, err)
		}
		return &ev, nil

	case IsOwnerChanged(log.Topics):
		var ev OwnerChanged
		if err := registryContract.UnpackLog(&ev, "DIDOwnerChanged", log); err != nil {
			return nil, fmt.Errorf("%w: DIDOwnerChanged: %v", did.ErrDecodeFailure, err)
		}
		return &ev, nil

	default:
		return nil, did.ErrUnknownTopic
	}
}
