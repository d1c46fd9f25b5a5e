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


// Package did provides the W3C DID document model, codec helpers and
// verification suite registry used by the did:ethr resolver.
package did

import "regexp"

// Version of the DID module
const Version = "0.1.0"

// ethrDIDPattern matches a did:ethr identifier whose final component is either
// a 20-byte address or a 33-byte compressed secp256k1 public key.
var ethrDIDPattern = regexp.MustCompile(`^(.*)?(0x[0-9a-fA-F]{40}|0x[0-9a-fA-F]{66})$`)

// IsEthrDID reports whether the given string carries a valid did:ethr identifier.
func IsEthrDID(did string) bool {
	return ethrDIDPattern.MatchString(did)
}

// Accept media types recognised by the resolver
const (
	AcceptDIDJSON   = "application/did+json"
	AcceptDIDLDJSON = "application/did+ld+json"
)

// LDContext is the JSON-LD context attached to documents resolved with
// the application/did+ld+json accept value.
var LDContext = []string{
	"https://www.w3.org/ns/did/v1",
	"https://w3id.org/security/suites/secp256k1recovery-2020/v2",
	"https://w3id.org/security/v3-unstable",
}

// ContextForAccept returns the document context for the requested accept
// format, or ErrUnsupportedAccept for any other media type.
func ContextForAccept(accept string) ([]string, error) {
	switch accept {
	case AcceptDIDJSON:
		return []string{}, nil
	case AcceptDIDLDJSON:
		return append([]string{}, LDContext...), nil
	default:
		return nil, ErrUnsupportedAccept
	}
}
