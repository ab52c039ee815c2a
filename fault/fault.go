// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyFrozen            = InvalidError("not controller or already frozen")
	AlreadyInitialised       = ExistsError("already initialised")
	BalanceOverflow          = InvalidError("balance overflow")
	BlockIndexExists         = ExistsError("block index already exists")
	BlockNotFound            = NotFoundError("block not found")
	CertificateFileExists    = ExistsError("certificate file already exists")
	CertificateFileNotFound  = NotFoundError("certificate file not found")
	ChainBroken              = RecordError("chain is broken")
	ContentNotFound          = NotFoundError("content not found")
	DatabaseIsNotSet         = ProcessError("database is not set")
	EmptyContent             = LengthError("content is empty")
	InsufficientBalance      = InvalidError("insufficient balance")
	InvalidAddress           = InvalidError("invalid address")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidJSON              = InvalidError("invalid json")
	InvalidPortNumber        = InvalidError("invalid port number")
	InvalidPrivateKey        = InvalidError("invalid private key")
	InvalidPublicKey         = InvalidError("invalid public key")
	InvalidQuantity          = InvalidError("quantity must be greater than zero")
	InvalidSignature         = InvalidError("invalid signature")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	InvalidTokenId           = InvalidError("invalid token id")
	InvalidTransactionType   = InvalidError("invalid transaction type")
	InvalidVersion           = InvalidError("invalid object version")
	KeyFileAlreadyExists     = ExistsError("key file already exists")
	KeyFileNotFound          = NotFoundError("key file not found")
	MaxSupplyExceeded        = InvalidError("maximum supply exceeded")
	MissingParameters        = InvalidError("missing parameters")
	MissingTimestamp         = InvalidError("missing timestamp")
	NotController            = InvalidError("signer is not the object controller")
	NotInitialised           = NotFoundError("not initialised")
	NotTransferable          = InvalidError("token is not transferable")
	ObjectFrozen             = InvalidError("object is frozen")
	ObjectPreconditionFailed = ProcessError("object precondition failed")
	PreviousCidMismatch      = InvalidError("previous object cid does not match")
	RateLimiting             = InvalidError("rate limiting")
	RecordTruncated          = RecordError("record is truncated")
	SignerMismatch           = InvalidError("signer does not match address")
	TokenAlreadyExists       = ExistsError("token already exists")
	TokenNotFound            = NotFoundError("token not found")
	TransactionAlreadyExists = ExistsError("transaction already exists")
	TransactionNotFound      = NotFoundError("transaction not found")
	TransactionNotInProgress = ProcessError("storage transaction not in progress")
	WalletNotFound           = NotFoundError("wallet not found")
	WrongReservoirFile       = RecordError("reservoir file header mismatch")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
