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


package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ravindu-rev/fi-ethr-resolver/did"
)

var addressCmd = &cobra.Command{
	Use:   "address [DID]",
	Short: "Print the EVM address controlled by a did:ethr identifier",
	Long: `Print the 20-byte EVM address for a did:ethr identifier. Address
identifiers are echoed back; compressed public-key identifiers are reduced
to the address the key controls.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddress,
}

func init() {
	rootCmd.AddCommand(addressCmd)
}

func runAddress(cmd *cobra.Command, args []string) error {
	didStr := args[0]

	if !did.IsEthrDID(didStr) {
		return fmt.Errorf("not a valid did:ethr: %s", didStr)
	}

	if publicKey, ok := did.PublicKeyFromDID(didStr); ok {
		addr, err := did.AddressFromPublicKey(publicKey)
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	}

	fmt.Println(did.ExtractIdentifier(didStr))
	return nil
}
