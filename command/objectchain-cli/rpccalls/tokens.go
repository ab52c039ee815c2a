// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/objectchaind/canonical"
	"github.com/bitmark-inc/objectchaind/content"
	"github.com/bitmark-inc/objectchaind/identity"
	"github.com/bitmark-inc/objectchaind/rpc/tokens"
	"github.com/bitmark-inc/objectchaind/service"
)

// CreateTokenData - data for a token creation request
type CreateTokenData struct {
	Controller   *identity.KeyPair
	TokenId      string
	Name         string
	Description  string
	MaxSupply    uint64
	Transferable bool
	ObjectJson   string
}

// UpdateObjectData - data for a new object version
type UpdateObjectData struct {
	Controller  *identity.KeyPair
	TokenId     string
	ObjectJson  string
	PreviousCid string
	NewVersion  int64
}

// CreateToken - register a token and its first object
func (client *Client) CreateToken(data *CreateTokenData) (*service.CreateTokenReply, error) {
	transferable := data.Transferable
	request := &service.CreateTokenRequest{
		TokenId:                data.TokenId,
		Name:                   data.Name,
		Description:            data.Description,
		MaxSupply:              data.MaxSupply,
		Transferable:           &transferable,
		ControllerPublicKeyPem: data.Controller.PublicKeyPEM,
		ObjectJson:             data.ObjectJson,
	}

	client.printJson("Create Request", request)

	var reply service.CreateTokenReply
	err := client.client.Call("Tokens.Create", request, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return &reply, nil
}

// Freeze - controller signed permanent freeze of the object
func (client *Client) Freeze(controller *identity.KeyPair, tokenId string) (*tokens.FreezeReply, error) {
	ts := client.timestamp()
	signature, err := identity.Sign(controller.PrivateKey, identity.FreezeMessage(tokenId, ts))
	if nil != err {
		return nil, err
	}

	request := &service.FreezeRequest{
		TokenId:                tokenId,
		ControllerPublicKeyPem: controller.PublicKeyPEM,
		SignatureBase64:        signature,
		Ts:                     ts,
	}

	client.printJson("Freeze Request", request)

	var reply tokens.FreezeReply
	err = client.client.Call("Tokens.Freeze", request, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Token - current token state
func (client *Client) Token(tokenId string) (*service.TokenInfo, error) {
	var reply service.TokenInfo
	err := client.client.Call("Tokens.Get", &tokens.GetArguments{TokenId: tokenId}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Versions - object history of a token
func (client *Client) Versions(tokenId string) (*service.VersionsReply, error) {
	var reply service.VersionsReply
	err := client.client.Call("Tokens.Versions", &tokens.GetArguments{TokenId: tokenId}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Holders - one page of positive balances
func (client *Client) Holders(tokenId string, page int, pageSize int) (*service.HoldersReply, error) {
	arguments := &tokens.HoldersArguments{
		TokenId:  tokenId,
		Page:     page,
		PageSize: pageSize,
	}
	var reply service.HoldersReply
	err := client.client.Call("Tokens.Holders", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Mint - queue new supply for an address
func (client *Client) Mint(tokenId string, to string, quantity int64) (*service.SubmitReply, error) {
	request := &service.MintRequest{
		TokenId:   tokenId,
		ToAddress: to,
		Quantity:  quantity,
	}
	return client.submit("Tokens.Mint", "Mint", request)
}

// Transfer - queue a signed move of balance
func (client *Client) Transfer(owner *identity.KeyPair, tokenId string, to string, quantity int64) (*service.SubmitReply, error) {
	ts := client.timestamp()
	message := identity.TransferMessage(tokenId, owner.Address, to, quantity, ts)
	signature, err := identity.Sign(owner.PrivateKey, message)
	if nil != err {
		return nil, err
	}

	request := &service.TransferRequest{
		TokenId:         tokenId,
		FromAddress:     owner.Address,
		ToAddress:       to,
		Quantity:        quantity,
		PublicKeyPem:    owner.PublicKeyPEM,
		SignatureBase64: signature,
		Ts:              ts,
	}
	return client.submit("Tokens.Transfer", "Transfer", request)
}

// Burn - queue a signed destruction of balance
func (client *Client) Burn(owner *identity.KeyPair, tokenId string, quantity int64) (*service.SubmitReply, error) {
	ts := client.timestamp()
	message := identity.BurnMessage(tokenId, owner.Address, quantity, ts)
	signature, err := identity.Sign(owner.PrivateKey, message)
	if nil != err {
		return nil, err
	}

	request := &service.BurnRequest{
		TokenId:         tokenId,
		OwnerAddress:    owner.Address,
		Quantity:        quantity,
		PublicKeyPem:    owner.PublicKeyPEM,
		SignatureBase64: signature,
		Ts:              ts,
	}
	return client.submit("Tokens.Burn", "Burn", request)
}

// UpdateObject - queue a signed new object version
//
// the cid and hash are computed locally, the server derives the same
// values from the canonical form before checking the signature
func (client *Client) UpdateObject(data *UpdateObjectData) (*service.SubmitReply, error) {
	canonicalJSON, err := canonical.Canonicalize(data.ObjectJson)
	if nil != err {
		return nil, err
	}
	sha := canonical.Sha256Hex(canonicalJSON)
	newCid := content.Cid([]byte(canonicalJSON))

	ts := client.timestamp()
	message := identity.UpdateObjectMessage(data.TokenId, newCid, data.PreviousCid, data.NewVersion, sha, ts)
	signature, err := identity.Sign(data.Controller.PrivateKey, message)
	if nil != err {
		return nil, err
	}

	request := &service.UpdateObjectRequest{
		TokenId:           data.TokenId,
		PublicKeyPem:      data.Controller.PublicKeyPEM,
		SignatureBase64:   signature,
		NewObjectJson:     data.ObjectJson,
		PreviousObjectCid: data.PreviousCid,
		NewVersion:        data.NewVersion,
		Ts:                ts,
	}
	return client.submit("Tokens.UpdateObject", "UpdateObject", request)
}

func (client *Client) submit(method string, title string, request interface{}) (*service.SubmitReply, error) {
	client.printJson(title+" Request", request)

	var reply service.SubmitReply
	err := client.client.Call(method, request, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson(title+" Reply", reply)

	return &reply, nil
}
