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
	_ "embed"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

//go:embed EthereumDIDRegistry.abi.json
var ethereumDIDRegistryABI string

// DefaultRegistryAddress is the ERC-1056 Ethereum DID Registry deployment
// shared across EVM networks.
const DefaultRegistryAddress = "0xdca7ef03e98e0dc2b855be647c39abe984fcf21b"

// registryABI is the parsed ERC-1056 registry ABI
var registryABI abi.ABI

// registryContract is an unbound contract used for log unpacking only
var registryContract *bind.BoundContract

func init() {
	parsed, err := abi.JSON(strings.NewReader(ethereumDIDRegistryABI))
	if err != nil {
		panic(fmt.Sprintf("failed to parse EthereumDIDRegistry ABI: %v", err))
	}
	registryABI = parsed
	registryContract = bind.NewBoundContract(common.Address{}, registryABI, nil, nil, nil)
}

// RegistryABI returns the embedded ERC-1056 registry ABI as JSON.
func RegistryABI() string {
	return ethereumDIDRegistryABI
}
