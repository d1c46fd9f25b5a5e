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
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ravindu-rev/fi-ethr-resolver/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "ethr-did",
	Short: "ethr-did - did:ethr resolution against the ERC-1056 registry",
	Long: `ethr-did resolves did:ethr decentralized identifiers against an
EVM-compatible JSON-RPC endpoint and prints the resulting W3C DID document.

Resolution is read-only: the tool replays the registry's change events for
an identity and never submits transactions.`,
}

var logLevel string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Local overrides, ignored when absent
	_ = godotenv.Load()

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cobra.OnInitialize(func() {
		if logLevel != "" {
			logger.Default().SetLevel(logger.ParseLevel(logLevel))
		}
	})
}
