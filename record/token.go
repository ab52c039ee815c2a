// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// AssetVersion - one committed version of the token's object
type AssetVersion struct {
	AssetCid           string `json:"assetCid"`
	VersionNumber      int64  `json:"versionNumber"`
	PreviousAssetCid   string `json:"previousAssetCid"`
	JsonSha256         string `json:"jsonSha256"`
	CommittedByAddress string `json:"committedByAddress"`
	SignatureBase64    string `json:"signatureBase64"`
	CreatedAt          int64  `json:"createdAt"` // unix milliseconds
}

// Token - a semi fungible token whose payload is a versioned object
type Token struct {
	TokenId                 string         `json:"tokenId"`
	Name                    string         `json:"name"`
	Description             string         `json:"description"`
	MaxSupply               uint64         `json:"maxSupply"` // 0 => unbounded
	TotalMinted             uint64         `json:"totalMinted"`
	TotalBurned             uint64         `json:"totalBurned"`
	Transferable            bool           `json:"transferable"`
	CurrentObjectCid        string         `json:"currentObjectCid"`
	CurrentVersion          int64          `json:"currentVersion"`
	ObjectVersions          []AssetVersion `json:"objectVersions"`
	ObjectControllerAddress string         `json:"objectControllerAddress"`
	ObjectFrozen            bool           `json:"objectFrozen"`
	CreatedAt               int64          `json:"createdAt"` // unix milliseconds
}

// Circulating - minted less burned
//
// never negative as a burn can only remove an existing balance
func (t *Token) Circulating() uint64 {
	if t.TotalBurned > t.TotalMinted {
		return 0
	}
	return t.TotalMinted - t.TotalBurned
}

// CanMint - check a mint of quantity stays within the maximum supply
func (t *Token) CanMint(quantity uint64) bool {
	if 0 == t.MaxSupply {
		return true
	}
	return t.TotalMinted+quantity >= t.TotalMinted && t.TotalMinted+quantity <= t.MaxSupply
}

// MaximumTokenIdLength - longest accepted token id
const MaximumTokenIdLength = 64

// ValidTokenId - 1..64 characters from [A-Za-z0-9._-]
//
// token ids are storage key prefixes, so no separator byte may appear
func ValidTokenId(tokenId string) bool {
	if 0 == len(tokenId) || len(tokenId) > MaximumTokenIdLength {
		return false
	}
	for i := 0; i < len(tokenId); i += 1 {
		c := tokenId[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Holding - balance of one owner for one token
type Holding struct {
	TokenId      string `json:"tokenId"`
	OwnerAddress string `json:"ownerAddress"`
	Balance      uint64 `json:"balance"`
}
