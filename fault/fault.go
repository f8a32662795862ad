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

// common errors - keep in alphabetic order
var (
	ErrAllocationFailed      = ProcessError("node allocation failed")
	ErrAlreadyInitialised    = InvalidError("already initialised")
	ErrConfigCountInvalid    = InvalidError("configuration count must be positive")
	ErrConfigKeyTypeInvalid  = InvalidError("configuration key type is invalid")
	ErrConfigNotTable        = InvalidError("configuration file did not return a table")
	ErrConfigPoolInvalid     = InvalidError("configuration pool limit is smaller than preallocation")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyExists             = ExistsError("key already exists")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingArgument       = InvalidError("missing argument")
	ErrNotANumber            = InvalidError("not a number")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrStackCapacityExceeded = LengthError("stack capacity exceeded")
	ErrUnknownCommand        = InvalidError("unknown command")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
