// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/objectchaind/canonical"
	"github.com/bitmark-inc/objectchaind/fault"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/ledger"
	"github.com/bitmark-inc/objectchaind/record"
)

// CreateToken - store the first object version and insert the token
func (s *Service) CreateToken(request *CreateTokenRequest) (*CreateTokenReply, error) {
	if "" == request.ControllerPublicKeyPem || "" == request.ObjectJson {
		return nil, fault.MissingParameters
	}

	tokenId := request.TokenId
	if "" == tokenId {
		tokenId = record.NewId()
	} else if !record.ValidTokenId(tokenId) {
		return nil, fault.InvalidTokenId
	} else {
		_, err := s.store.Token(tokenId)
		if nil == err {
			return nil, fault.TokenAlreadyExists
		}
		if fault.TokenNotFound != err {
			return nil, err
		}
	}

	controller, err := identity.AddressFromPEM(request.ControllerPublicKeyPem)
	if nil != err {
		return nil, err
	}

	canonicalJSON, err := canonical.Canonicalize(request.ObjectJson)
	if nil != err {
		return nil, err
	}
	sha := canonical.Sha256Hex(canonicalJSON)

	stored, err := s.content.Put(tokenId+"-v1.json", []byte(canonicalJSON))
	if nil != err {
		return nil, err
	}

	transferable := true
	if nil != request.Transferable {
		transferable = *request.Transferable
	}

	now := s.nowMs()
	token := &record.Token{
		TokenId:                 tokenId,
		Name:                    request.Name,
		Description:             request.Description,
		MaxSupply:               request.MaxSupply,
		Transferable:            transferable,
		CurrentObjectCid:        stored.Cid,
		CurrentVersion:          1,
		ObjectControllerAddress: controller,
		CreatedAt:               now,
		ObjectVersions: []record.AssetVersion{
			{
				AssetCid:           stored.Cid,
				VersionNumber:      1,
				JsonSha256:         sha,
				CommittedByAddress: controller,
				CreatedAt:          now,
			},
		},
	}
	err = s.store.InsertToken(token)
	if nil != err {
		return nil, err
	}

	s.log.Infof("created token: %s  controller: %s  cid: %s", tokenId, controller, stored.Cid)

	return &CreateTokenReply{
		TokenId:           tokenId,
		ObjectCid:         stored.Cid,
		ControllerAddress: controller,
		Sha:               sha,
	}, nil
}

// Freeze - controller signed, permanent stop of object updates
func (s *Service) Freeze(request *FreezeRequest) error {
	if "" == request.ControllerPublicKeyPem || "" == request.SignatureBase64 {
		return fault.MissingParameters
	}
	message := identity.FreezeMessage(request.TokenId, request.Ts)
	if !identity.VerifyPEM(request.ControllerPublicKeyPem, message, request.SignatureBase64) {
		return fault.InvalidSignature
	}
	controller, err := identity.AddressFromPEM(request.ControllerPublicKeyPem)
	if nil != err {
		return err
	}
	err = s.store.Freeze(request.TokenId, controller)
	if nil != err {
		return err
	}
	s.log.Infof("frozen token: %s", request.TokenId)
	return nil
}

// Token - snapshot with circulating supply and holder count
func (s *Service) Token(tokenId string) (*TokenInfo, error) {
	token, err := s.store.Token(tokenId)
	if nil != err {
		return nil, err
	}
	holders, err := s.store.HolderCount(tokenId)
	if nil != err {
		return nil, err
	}
	return &TokenInfo{
		Token:       token,
		Circulating: token.Circulating(),
		Holders:     holders,
	}, nil
}

// Versions - the object history
func (s *Service) Versions(tokenId string) (*VersionsReply, error) {
	token, err := s.store.Token(tokenId)
	if nil != err {
		return nil, err
	}
	return &VersionsReply{
		TokenId:          token.TokenId,
		CurrentVersion:   token.CurrentVersion,
		CurrentObjectCid: token.CurrentObjectCid,
		ObjectVersions:   token.ObjectVersions,
	}, nil
}

// Holders - paged positive balances, largest first
func (s *Service) Holders(tokenId string, page int, pageSize int) (*HoldersReply, error) {
	_, err := s.store.Token(tokenId)
	if nil != err {
		return nil, err
	}
	page, pageSize = ledger.ClampPage(page, pageSize)

	items, total, err := s.store.Holders(tokenId, page, pageSize)
	if nil != err {
		return nil, err
	}
	return &HoldersReply{
		TokenId:  tokenId,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    items,
	}, nil
}
