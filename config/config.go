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


// Package config provides resolver configuration from network presets,
// environment variables and YAML files.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResolverConfig contains the settings for one resolver instance
type ResolverConfig struct {
	Network         string `yaml:"network" json:"network"`
	RPCURL          string `yaml:"rpc_url" json:"rpc_url"`
	RegistryAddress string `yaml:"registry_address" json:"registry_address"`
	Accept          string `yaml:"accept" json:"accept"`
	LogLevel        string `yaml:"log_level" json:"log_level"`
}

// defaultRegistryAddress is the shared ERC-1056 registry deployment
const defaultRegistryAddress = "0xdca7ef03e98e0dc2b855be647c39abe984fcf21b"

// NetworkPresets defines preset configurations for common networks
var NetworkPresets = map[string]*ResolverConfig{
	"mainnet": {
		Network:         "mainnet",
		RPCURL:          "https://cloudflare-eth.com",
		RegistryAddress: defaultRegistryAddress,
		Accept:          "application/did+ld+json",
		LogLevel:        "info",
	},
	"sepolia": {
		Network:         "sepolia",
		RPCURL:          "https://rpc.sepolia.org",
		RegistryAddress: defaultRegistryAddress,
		Accept:          "application/did+ld+json",
		LogLevel:        "info",
	},
	"local": {
		Network:         "local",
		RPCURL:          "http://localhost:8545",
		RegistryAddress: defaultRegistryAddress,
		Accept:          "application/did+ld+json",
		LogLevel:        "debug",
	},
}

// Load returns the configuration for a network preset with environment
// variable overrides applied. Unknown networks fall back to mainnet.
func Load(network string) *ResolverConfig {
	preset, exists := NetworkPresets[strings.ToLower(network)]
	if !exists {
		preset = NetworkPresets["mainnet"]
	}

	cfg := *preset

	if rpc := os.Getenv("ETHR_RPC_URL"); rpc != "" {
		cfg.RPCURL = rpc
	}
	if registry := os.Getenv("ETHR_REGISTRY_ADDRESS"); registry != "" {
		cfg.RegistryAddress = registry
	}
	if accept := os.Getenv("ETHR_ACCEPT"); accept != "" {
		cfg.Accept = accept
	}
	if level := os.Getenv("ETHR_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return &cfg
}

// LoadFile reads a YAML configuration file, substituting ${VAR} and
// ${VAR:default} references before parsing. Missing fields are filled from
// the named network preset.
func LoadFile(path string) (*ResolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ResolverConfig
	if err := yaml.Unmarshal([]byte(SubstituteEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	base := Load(cfg.Network)
	if cfg.RPCURL == "" {
		cfg.RPCURL = base.RPCURL
	}
	if cfg.RegistryAddress == "" {
		cfg.RegistryAddress = base.RegistryAddress
	}
	if cfg.Accept == "" {
		cfg.Accept = base.Accept
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = base.LogLevel
	}

	return &cfg, nil
}

// Validate checks that the configuration can drive a resolution.
func (c *ResolverConfig) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("rpc_url is required")
	}
	if c.RegistryAddress == "" {
		return fmt.Errorf("registry_address is required")
	}
	return nil
}
