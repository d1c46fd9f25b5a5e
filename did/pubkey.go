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


package did

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// AddressFromPublicKey derives the 20-byte EVM address for a 33-byte
// compressed secp256k1 public key given as hex, with or without the 0x
// prefix. The result is lower-case 0x-prefixed hex.
func AddressFromPublicKey(publicKey string) (string, error) {
	raw, err := hex.DecodeString(Strip0x(publicKey))
	if err != nil {
		return "", fmt.Errorf("invalid public key hex: %w", err)
	}

	pk, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse secp256k1 public key: %w", err)
	}

	addr := ethcrypto.PubkeyToAddress(*pk.ToECDSA())
	return "0x" + EncodeHex(addr.Bytes()), nil
}
