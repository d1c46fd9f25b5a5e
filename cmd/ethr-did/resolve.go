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
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/ravindu-rev/fi-ethr-resolver/config"
	"github.com/ravindu-rev/fi-ethr-resolver/did/ethr"
	"github.com/ravindu-rev/fi-ethr-resolver/internal/logger"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [DID]",
	Short: "Resolve a did:ethr identifier to its DID document",
	Long: `Resolve a did:ethr identifier by replaying the ERC-1056 registry's
change events and print the resulting DID document.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

var (
	// Resolve flags
	resolveNetwork  string
	resolveRPC      string
	resolveRegistry string
	resolveAccept   string
	resolveOutput   string
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveNetwork, "network", "mainnet", "Network preset (mainnet, sepolia, local)")
	resolveCmd.Flags().StringVar(&resolveRPC, "rpc", "", "JSON-RPC endpoint URL")
	resolveCmd.Flags().StringVar(&resolveRegistry, "registry", "", "ERC-1056 registry contract address")
	resolveCmd.Flags().StringVar(&resolveAccept, "accept", "", "Accept format (application/did+json, application/did+ld+json)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "Output file path")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	didStr := args[0]
	log := logger.Default()

	cfg := config.Load(resolveNetwork)
	if resolveRPC != "" {
		cfg.RPCURL = resolveRPC
	}
	if resolveRegistry != "" {
		cfg.RegistryAddress = resolveRegistry
	}
	if resolveAccept != "" {
		cfg.Accept = resolveAccept
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Info("resolving DID",
		logger.String("did", didStr),
		logger.String("rpc", cfg.RPCURL),
		logger.String("registry", cfg.RegistryAddress),
	)

	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}
	defer client.Close()

	resolver := ethr.NewResolver(client, cfg.RegistryAddress)
	doc, deactivated, versionID, err := resolver.ResolveWithMetadata(ctx, didStr, cfg.Accept)
	if err != nil {
		return fmt.Errorf("failed to resolve DID: %w", err)
	}

	if deactivated {
		log.Warn("DID is deactivated", logger.String("did", didStr))
	}
	if versionID != nil {
		log.Debug("latest change", logger.Uint64("block", *versionID))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal DID document: %w", err)
	}

	if resolveOutput != "" {
		if err := os.WriteFile(resolveOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("DID document written to %s\n", resolveOutput)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
