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

// Verification suite names registered for DID documents
const (
	EcdsaSecp256k1RecoveryMethod2020  = "EcdsaSecp256k1RecoveryMethod2020"
	EcdsaSecp256k1VerificationKey2019 = "EcdsaSecp256k1VerificationKey2019"
	Ed25519VerificationKey2018        = "Ed25519VerificationKey2018"
	RSAVerificationKey2018            = "RSAVerificationKey2018"
	X25519KeyAgreementKey2019         = "X25519KeyAgreementKey2019"
)

// LegacyAlgoMap translates historical verification-suite names into their
// W3C-registered canonical forms. Attribute names concatenate an algorithm
// with a purpose suffix; when the result is a known legacy name the canonical
// suite replaces it.
var LegacyAlgoMap = map[string]string{
	"Secp256k1VerificationKey2018":         EcdsaSecp256k1VerificationKey2019,
	"Secp256k1SignatureAuthentication2018": EcdsaSecp256k1VerificationKey2019,
	"Ed25519SignatureAuthentication2018":   Ed25519VerificationKey2018,
	"Ed25519VerificationKey2018":           Ed25519VerificationKey2018,
	"RSAVerificationKey2018":               RSAVerificationKey2018,
	"X25519KeyAgreementKey2019":            X25519KeyAgreementKey2019,
}
