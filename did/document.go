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

// Document is a W3C DID document describing the keys and services of a
// DID subject.
type Document struct {
	Context            []string             `json:"@context"`
	ID                 string               `json:"id"`
	VerificationMethod []VerificationMethod `json:"verificationMethod"`
	Authentication     []string             `json:"authentication"`
	AssertionMethod    []string             `json:"assertionMethod"`
	KeyAgreement       []VerificationMethod `json:"keyAgreement"`
	Services           []Service            `json:"services"`
}

// NewDocument creates an empty document for the given DID and context.
// All collections are non-nil so they serialize as empty arrays.
func NewDocument(id string, context []string) *Document {
	if context == nil {
		context = []string{}
	}
	return &Document{
		Context:            context,
		ID:                 id,
		VerificationMethod: []VerificationMethod{},
		Authentication:     []string{},
		AssertionMethod:    []string{},
		KeyAgreement:       []VerificationMethod{},
		Services:           []Service{},
	}
}

// VerificationMethod is a key entry of a DID document. Exactly one of the
// key-material fields is populated per entry.
type VerificationMethod struct {
	ID                  string `json:"id,omitempty"`
	Type                string `json:"type"`
	Controller          string `json:"controller,omitempty"`
	BlockchainAccountID string `json:"blockchainAccountId,omitempty"`
	PublicKeyHex        string `json:"publicKeyHex,omitempty"`
	PublicKeyBase58     string `json:"publicKeyBase58,omitempty"`
	PublicKeyBase64     string `json:"publicKeyBase64,omitempty"`
	PublicKeyPem        string `json:"publicKeyPem,omitempty"`
	PrivateKeyHex       string `json:"privateKeyHex,omitempty"`
	Value               string `json:"value,omitempty"`
	Revoked             *bool  `json:"revoked,omitempty"`
}

// Service is a service endpoint declared for a DID subject. The endpoint is
// either a JSON value or a plain string, depending on what was stored
// on chain.
type Service struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	ServiceEndpoint any    `json:"serviceEndpoint"`
}

// Bool returns a pointer to the given bool, for optional document fields.
func Bool(v bool) *bool {
	return &v
}
