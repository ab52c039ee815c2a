// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"fmt"

	"github.com/bitmark-inc/objectchaind/canonical"
	"github.com/bitmark-inc/objectchaind/content"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/record"
)

// SubmitMint - queue new supply for an existing token
func (s *Service) SubmitMint(request *MintRequest) (*SubmitReply, error) {
	if request.Quantity <= 0 {
		return nil, fault.InvalidQuantity
	}
	if !identity.ValidAddress(request.ToAddress) {
		return nil, fault.InvalidAddress
	}
	_, err := s.store.Token(request.TokenId)
	if nil != err {
		return nil, err
	}

	tx := &record.Transaction{
		Type:        record.MintType,
		TokenId:     request.TokenId,
		FromAddress: record.MintAddress,
		ToAddress:   request.ToAddress,
		Quantity:    request.Quantity,
	}
	return s.enqueue(tx), nil
}

// SubmitTransfer - queue a transfer signed by the sender
func (s *Service) SubmitTransfer(request *TransferRequest) (*SubmitReply, error) {
	if request.Quantity <= 0 {
		return nil, fault.InvalidQuantity
	}
	if !identity.ValidAddress(request.FromAddress) || !identity.ValidAddress(request.ToAddress) {
		return nil, fault.InvalidAddress
	}

	message := identity.TransferMessage(request.TokenId, request.FromAddress, request.ToAddress, request.Quantity, request.Ts)
	err := checkSigner(request.PublicKeyPem, message, request.SignatureBase64, request.FromAddress)
	if nil != err {
		return nil, err
	}

	tx := &record.Transaction{
		Type:            record.TransferType,
		TokenId:         request.TokenId,
		FromAddress:     request.FromAddress,
		ToAddress:       request.ToAddress,
		Quantity:        request.Quantity,
		PublicKeyPem:    request.PublicKeyPem,
		SignatureBase64: request.SignatureBase64,
		TsMs:            request.Ts,
	}
	return s.enqueue(tx), nil
}

// SubmitBurn - queue a burn signed by the owner
func (s *Service) SubmitBurn(request *BurnRequest) (*SubmitReply, error) {
	if request.Quantity <= 0 {
		return nil, fault.InvalidQuantity
	}
	if !identity.ValidAddress(request.OwnerAddress) {
		return nil, fault.InvalidAddress
	}

	message := identity.BurnMessage(request.TokenId, request.OwnerAddress, request.Quantity, request.Ts)
	err := checkSigner(request.PublicKeyPem, message, request.SignatureBase64, request.OwnerAddress)
	if nil != err {
		return nil, err
	}

	tx := &record.Transaction{
		Type:            record.BurnType,
		TokenId:         request.TokenId,
		FromAddress:     request.OwnerAddress,
		ToAddress:       record.BurnAddress,
		Quantity:        request.Quantity,
		PublicKeyPem:    request.PublicKeyPem,
		SignatureBase64: request.SignatureBase64,
		TsMs:            request.Ts,
	}
	return s.enqueue(tx), nil
}

// SubmitUpdateObject - store the new object version and queue the update
//
// controller, version and previous cid are only checked at settlement
func (s *Service) SubmitUpdateObject(request *UpdateObjectRequest) (*SubmitReply, error) {
	if "" == request.NewObjectJson || "" == request.PreviousObjectCid || "" == request.PublicKeyPem || "" == request.SignatureBase64 {
		return nil, fault.MissingParameters
	}

	canonicalJSON, err := canonical.Canonicalize(request.NewObjectJson)
	if nil != err {
		return nil, err
	}
	sha := canonical.Sha256Hex(canonicalJSON)

	// the cid is deterministic so the signature can be checked before storing
	newCid := content.Cid([]byte(canonicalJSON))
	message := identity.UpdateObjectMessage(request.TokenId, newCid, request.PreviousObjectCid, request.NewVersion, sha, request.Ts)
	if !identity.VerifyPEM(request.PublicKeyPem, message, request.SignatureBase64) {
		return nil, fault.InvalidSignature
	}
	signer, err := identity.AddressFromPEM(request.PublicKeyPem)
	if nil != err {
		return nil, err
	}

	fileName := fmt.Sprintf("%s-v%d.json", request.TokenId, request.NewVersion)
	stored, err := s.content.Put(fileName, []byte(canonicalJSON))
	if nil != err {
		return nil, err
	}

	tx := &record.Transaction{
		Type:              record.UpdateObjectType,
		TokenId:           request.TokenId,
		FromAddress:       signer,
		PublicKeyPem:      request.PublicKeyPem,
		SignatureBase64:   request.SignatureBase64,
		NewObjectCid:      stored.Cid,
		PreviousObjectCid: request.PreviousObjectCid,
		NewVersionNumber:  request.NewVersion,
		JsonSha256:        sha,
		TsMs:              request.Ts,
	}
	reply := s.enqueue(tx)
	reply.NewCid = stored.Cid
	reply.Sha = sha
	return reply, nil
}

// assign identity and queue
func (s *Service) enqueue(tx *record.Transaction) *SubmitReply {
	tx.Id = record.NewId()
	tx.CreatedAt = s.nowMs()
	s.queue.Enqueue(tx)

	s.log.Debugf("queued: %s  type: %s  token: %s", tx.Id, tx.Type, tx.TokenId)

	return &SubmitReply{
		Queued: true,
		TxId:   tx.Id,
	}
}

// signature must verify and the key must belong to the expected address
func checkSigner(publicKeyPem string, message string, signatureBase64 string, address string) error {
	if "" == publicKeyPem || "" == signatureBase64 {
		return fault.MissingParameters
	}
	if !identity.VerifyPEM(publicKeyPem, message, signatureBase64) {
		return fault.InvalidSignature
	}
	signer, err := identity.AddressFromPEM(publicKeyPem)
	if nil != err {
		return err
	}
	if signer != address {
		return fault.SignerMismatch
	}
	return nil
}
