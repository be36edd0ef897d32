// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Kind classifies a registry failure
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is returned by every registry operation. Message is safe to show
// to the caller; Err, when set, is the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func conflictError(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func notFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func internalError(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the Kind of err, or KindInternal for foreign errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message of err
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Caller-facing messages
const (
	MsgMissingUserFields = "pseudo and email are required"
	MsgUserExists        = "User already exists"
	MsgMissingUserID     = "Missing query parameter: userId"
	MsgInvalidBody       = "Invalid JSON body"
	MsgInvalidChoice     = "Invalid choice (Oui/Non)"
	MsgUnknownUser       = "Unknown user"
	MsgAlreadyVoted      = "This account has already voted"
	MsgDatabaseError     = "Database error"
)

// InvalidBody is the error for a request body that does not parse.
// Handlers report it between the userId and choice checks of CastVote.
func InvalidBody() error {
	return validationError(MsgInvalidBody)
}
