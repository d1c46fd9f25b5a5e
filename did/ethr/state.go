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
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ravindu-rev/fi-ethr-resolver/did"
)

// attrNamePattern matches registry attribute names of the form
// did/<section>/<algorithm>[/<purpose>][/<encoding>]. Names outside this
// shape are ignored for forward compatibility.
var attrNamePattern = regexp.MustCompile(`^did/(pub|svc)/(\w+)(/(\w+))?(/(\w+))?$`)

// DocumentState accumulates registry change events for one identity and
// projects them into a DID document. A state is owned by a single
// resolution and must not be reused after Finalize.
type DocumentState struct {
	doc         *did.Document
	deactivated bool
	controller  string
	versionID   *uint64
	chainID     *big.Int

	delegateCount int
	serviceCount  int

	// Keyed by eventIndex; a later event with the same index supersedes
	// the earlier one.
	auth             map[string]string
	signingRefs      map[string]string
	keyAgreementRefs map[string]did.VerificationMethod
	pks              map[string]did.VerificationMethod
	services         map[string]did.Service
}

// NewDocumentState creates an accumulator for the given document skeleton.
// The controller is the 0x-prefixed identifier the DID was derived from; it
// changes with every applied owner event.
func NewDocumentState(doc *did.Document, controller string) *DocumentState {
	return &DocumentState{
		doc:              doc,
		controller:       controller,
		auth:             make(map[string]string),
		signingRefs:      make(map[string]string),
		keyAgreementRefs: make(map[string]did.VerificationMethod),
		pks:              make(map[string]did.VerificationMethod),
		services:         make(map[string]did.Service),
	}
}

// SetChainID installs the chain id used for eip155 account identifiers.
// It must be set before any delegate event is applied.
func (s *DocumentState) SetChainID(chainID *big.Int) {
	s.chainID = chainID
}

// SetVersion records the block number of the log about to be applied.
func (s *DocumentState) SetVersion(block uint64) {
	s.versionID = &block
}

// Controller returns the current controller address of the identity.
func (s *DocumentState) Controller() string {
	return s.controller
}

// Apply folds a single registry event into the accumulated state.
func (s *DocumentState) Apply(event Event) error {
	switch ev := event.(type) {
	case *OwnerChanged:
		s.applyOwnerChanged(ev)
		return nil
	case *DelegateChanged:
		return s.applyDelegateChanged(ev)
	case *AttributeChanged:
		return s.applyAttributeChanged(ev)
	default:
		return fmt.Errorf("%w: unhandled event %T", did.ErrDecodeFailure, event)
	}
}

func (s *DocumentState) applyOwnerChanged(ev *OwnerChanged) {
	// The counter moves on owner changes too, keeping #delegate-N numbering
	// identical to the reference resolver.
	s.delegateCount++
	s.controller = "0x" + did.EncodeHex(ev.Owner.Bytes())
	s.deactivated = ev.Owner == (common.Address{})
}

func (s *DocumentState) applyDelegateChanged(ev *DelegateChanged) error {
	s.delegateCount++

	trimmed := did.TrimNulBytes(ev.DelegateType[:])
	if !utf8.Valid(trimmed) {
		return fmt.Errorf("%w: delegate type is not valid UTF-8", did.ErrDecodeFailure)
	}
	delegateType := string(trimmed)
	delegate := "0x" + did.EncodeHex(ev.Delegate.Bytes())
	eventIndex := fmt.Sprintf("DIDDelegateChanged-%s-%s", delegateType, delegate)
	ref := fmt.Sprintf("%s#delegate-%d", s.doc.ID, s.delegateCount)

	switch delegateType {
	case "sigAuth":
		s.auth[eventIndex] = ref
		s.signingRefs[eventIndex] = ref
	case "veriKey":
		s.pks[eventIndex] = did.VerificationMethod{
			ID:                  ref,
			Type:                did.EcdsaSecp256k1RecoveryMethod2020,
			Controller:          s.doc.ID,
			BlockchainAccountID: fmt.Sprintf("eip155:%s:%s", s.chainID, delegate),
			Revoked:             did.Bool(false),
		}
		s.signingRefs[eventIndex] = ref
	}

	return nil
}

func (s *DocumentState) applyAttributeChanged(ev *AttributeChanged) error {
	name := did.ToUTF8Lossy(did.TrimNulBytes(ev.Name[:]))
	value := did.ToUTF8Lossy(ev.Value)
	eventIndex := fmt.Sprintf("DIDAttributeChanged-%s-%s", name, value)

	matched := attrNamePattern.FindStringSubmatch(name)
	if matched == nil {
		return nil
	}

	section := matched[1]
	algorithm := matched[2]
	purpose := matched[4]
	encoding := matched[6]

	switch section {
	case "pub":
		suffix := ""
		switch purpose {
		case "sigAuth":
			suffix = "SignatureAuthentication2018"
		case "veriKey":
			suffix = "VerificationKey2018"
		case "enc":
			suffix = "KeyAgreementKey2019"
		}

		s.delegateCount++

		suite, ok := did.LegacyAlgoMap[algorithm+suffix]
		if !ok {
			suite = algorithm
		}

		pk := did.VerificationMethod{
			ID:         fmt.Sprintf("%s#delegate-%d", s.doc.ID, s.delegateCount),
			Type:       suite,
			Controller: s.doc.ID,
			Revoked:    did.Bool(false),
		}

		switch encoding {
		case "hex":
			pk.PublicKeyHex = did.EncodeHex([]byte(did.Strip0x(value)))
		case "base64":
			pk.PublicKeyBase64 = did.EncodeBase64([]byte(value))
		case "base58":
			pk.PublicKeyBase58 = did.EncodeBase58([]byte(value))
		case "pem":
			trimmed := did.TrimNulBytes(ev.Value)
			if !utf8.Valid(trimmed) {
				return fmt.Errorf("%w: attribute value is not valid UTF-8", did.ErrDecodeFailure)
			}
			pk.PublicKeyPem = string(trimmed)
		default:
			pk.Value = did.Strip0x(value)
		}

		s.pks[eventIndex] = pk

		switch purpose {
		case "sigAuth":
			s.auth[eventIndex] = pk.ID
			s.signingRefs[eventIndex] = pk.ID
		case "veriKey":
			// Attribute keys declared for veriKey land in keyAgreement,
			// mirroring the reference resolver.
			s.keyAgreementRefs[eventIndex] = pk
		default:
			s.signingRefs[eventIndex] = pk.ID
		}

	case "svc":
		s.serviceCount++

		if !utf8.Valid(ev.Value) {
			return fmt.Errorf("%w: service value is not valid UTF-8", did.ErrDecodeFailure)
		}
		raw := string(ev.Value)

		var endpoint any
		if err := json.Unmarshal([]byte(raw), &endpoint); err != nil {
			endpoint = raw
		}

		s.services[eventIndex] = did.Service{
			ID:              fmt.Sprintf("%s#service-%d", s.doc.ID, s.serviceCount),
			Type:            algorithm,
			ServiceEndpoint: endpoint,
		}
	}

	return nil
}

// Finalize projects the accumulated state into the DID document and reports
// the deactivation flag and the block number of the last applied change.
// The state must not be used afterwards.
func (s *DocumentState) Finalize() (*did.Document, bool, *uint64) {
	chainID := ""
	if s.chainID != nil {
		chainID = s.chainID.String()
	}

	controllerRef := s.doc.ID + "#controller"
	publicKeys := []did.VerificationMethod{{
		ID:                  controllerRef,
		Type:                did.EcdsaSecp256k1RecoveryMethod2020,
		Controller:          s.doc.ID,
		BlockchainAccountID: fmt.Sprintf("eip155:%s:%s", chainID, s.controller),
		Revoked:             did.Bool(false),
	}}

	s.doc.Authentication = append(s.doc.Authentication, controllerRef)
	s.doc.AssertionMethod = append(s.doc.AssertionMethod, controllerRef)

	// Identities named by a compressed public key expose the key material
	// itself while the key still owns the identity.
	if publicKey, ok := did.PublicKeyFromDID(s.doc.ID); ok && s.controller == publicKey {
		keyRef := s.doc.ID + "#controllerKey"
		publicKeys = append(publicKeys, did.VerificationMethod{
			ID:            keyRef,
			Type:          did.EcdsaSecp256k1VerificationKey2019,
			Controller:    s.doc.ID,
			PrivateKeyHex: did.Strip0x(publicKey),
		})
		s.doc.Authentication = append(s.doc.Authentication, keyRef)
		s.doc.AssertionMethod = append(s.doc.AssertionMethod, keyRef)
	}

	verificationMethod := make([]did.VerificationMethod, 0, len(s.pks))
	for _, pk := range s.pks {
		verificationMethod = append(verificationMethod, pk)
	}

	authentication := make([]string, 0, len(s.auth))
	for _, ref := range s.auth {
		authentication = append(authentication, ref)
	}

	for _, ref := range s.signingRefs {
		s.doc.AssertionMethod = append(s.doc.AssertionMethod, ref)
	}
	s.doc.Authentication = append(s.doc.Authentication, authentication...)
	s.doc.VerificationMethod = append(append(s.doc.VerificationMethod, publicKeys...), verificationMethod...)

	for _, svc := range s.services {
		s.doc.Services = append(s.doc.Services, svc)
	}
	for _, pk := range s.keyAgreementRefs {
		s.doc.KeyAgreement = append(s.doc.KeyAgreement, pk)
	}

	if s.deactivated {
		stripped := did.NewDocument(s.doc.ID, []string{})
		stripped.VerificationMethod = verificationMethod
		stripped.Authentication = authentication
		return stripped, true, s.versionID
	}

	return s.doc, false, s.versionID
}
