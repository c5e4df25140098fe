// Copyright (c) 2020 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package errtag classifies operating system failures into a small,
// fixed vocabulary of symbolic tags so callers can branch on the kind
// of failure without parsing message strings. Codes outside the fixed
// table are preserved as unclassified failures carrying the OS's own
// description.
package errtag

import (
	"errors"
	"syscall"
)

// Tag identifies one of the expected kinds of OS failure.
type Tag string

// The closed set of tags callers may match against.
const (
	E2BIG   Tag = "e2big"   // value too large
	EACCES  Tag = "eacces"  // access denied
	EINVAL  Tag = "einval"  // invalid argument
	EIO     Tag = "eio"     // I/O error
	ENODATA Tag = "enodata" // attribute not found
	ENOENT  Tag = "enoent"  // path not found
	ENOMEM  Tag = "enomem"  // out of memory
	ENOSPC  Tag = "enospc"  // no space on device
	EPERM   Tag = "eperm"   // operation not permitted
	EROFS   Tag = "erofs"   // read-only filesystem
	ENOTSUP Tag = "enotsup" // not supported
)

// ErrNotSupported is the cause reported when extended attributes are
// not available on this platform or build. Classify recognizes it even
// when no native error code is present.
var ErrNotSupported = errors.New("extended attributes are not supported on this platform")

// Error is a classified failure. Tag is empty for failures outside the
// fixed vocabulary; Msg then carries the descriptive message.
type Error struct {
	Tag Tag
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Tag != "" {
		if e.Err != nil {
			return string(e.Tag) + ": " + e.Err.Error()
		}
		return string(e.Tag)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify converts a failure into an *Error. A native error code
// found in the fixed table yields that tag; a not-supported condition
// with no code yields ENOTSUP; anything else becomes an unclassified
// Error carrying err's message. Classify(nil) is nil, and an error
// that is already classified passes through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if tag, ok := errnoTag(errno); ok {
			return &Error{Tag: tag, Err: err}
		}
	}
	if errors.Is(err, ErrNotSupported) {
		return &Error{Tag: ENOTSUP, Err: err}
	}
	return &Error{Msg: err.Error(), Err: err}
}

// TagOf reports the tag err classifies to, if any.
func TagOf(err error) (Tag, bool) {
	cerr, ok := Classify(err).(*Error)
	if !ok || cerr.Tag == "" {
		return "", false
	}
	return cerr.Tag, true
}

// Message returns an unclassified failure carrying a fixed
// descriptive message.
func Message(msg string) *Error {
	return &Error{Msg: msg}
}

// NotSupported classifies cause as the platform lacking extended
// attribute support.
func NotSupported(cause error) *Error {
	return &Error{Tag: ENOTSUP, Err: cause}
}
