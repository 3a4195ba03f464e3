// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AllocationError GenericError
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// instruction processing errors - keep in alphabetic order
var (
	ErrAlreadyInitialized   = ExistsError("slot already initialized")
	ErrInvalidAddress       = InvalidError("slot address does not match derived address")
	ErrInvalidRating        = InvalidError("rating must be between 1 and 5")
	ErrMalformedInstruction = RecordError("malformed instruction")
	ErrNoViableBump         = ProcessError("unable to find a viable bump seed")
	ErrNotEnoughAccounts    = RecordError("not enough account slots")
	ErrNotFound             = NotFoundError("slot is not initialized")
	ErrNotOwned             = AuthorisationError("slot is not owned by the program")
	ErrPayloadTooLarge      = LengthError("data length exceeds slot capacity")
	ErrSeedTooLong          = LengthError("derivation seed is too long")
	ErrTooManySeeds         = LengthError("too many derivation seeds")
	ErrUnauthorized         = AuthorisationError("missing required signature")
)

// ledger allocation errors, returned verbatim from the runtime
var (
	ErrFunderNotSigner   = AllocationError("funding account did not sign")
	ErrInsufficientFunds = AllocationError("insufficient funds for rent")
	ErrInvalidSeeds      = AllocationError("seeds do not derive the target address")
	ErrSlotInUse         = AllocationError("slot already in use")
	ErrSlotNotWritable   = AllocationError("slot is not writable")
	ErrSlotTooLarge      = AllocationError("requested slot size is too large")
	ErrBalanceOverflow   = AllocationError("balance overflow")
)

// runtime and ambient errors - keep in alphabetic order
var (
	ErrCertificateFileExists    = ExistsError("certificate file already exists")
	ErrConfigurationFileMissing = NotFoundError("configuration file is missing")
	ErrConfigurationNotTable    = InvalidError("configuration did not return a table")
	ErrDuplicateTransaction     = ExistsError("transaction already executed")
	ErrInvalidAddressLength     = LengthError("invalid address length")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidIPAddress         = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidPrivateKey        = InvalidError("invalid private key")
	ErrInvalidRecord            = RecordError("invalid record data")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrKeyFileExists            = ExistsError("key file already exists")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrModuleAlreadyInitialised = ExistsError("module already initialised")
	ErrNotAvailableOnLiveChain  = InvalidError("not available on live chain")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPlainName             = InvalidError("file name must not contain a path")
	ErrNotTransactionId         = InvalidError("not a transaction id")
	ErrNotTransactionPack       = RecordError("not a transaction pack")
	ErrRateLimiting             = InvalidError("rate limiting")
	ErrSignatureCountMismatch   = InvalidError("signature count does not match signers")
	ErrSignerMismatch           = InvalidError("private key does not match signer")
	ErrTransactionInUse         = ProcessError("database transaction already in use")
	ErrTransactionTooLarge      = LengthError("transaction is too large")
	ErrUnbalancedTransaction    = ProcessError("transaction does not conserve lamports")
	ErrUnknownProgram           = InvalidError("transaction is for an unknown program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AllocationError) Error() string    { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAllocation(e error) bool    { _, ok := e.(AllocationError); return ok }
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
