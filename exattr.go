// Copyright (c) 2020 DDN. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package exattr provides a uniform calling surface over the operating
// system's extended attribute primitives. Each operation performs a
// single OS call and returns; failures are normalized through
// pkg/errtag so callers can branch on the kind of failure without
// parsing messages.
//
// The package holds no state and adds no synchronization of its own.
// Concurrent calls on the same path inherit whatever atomicity the OS
// provides for extended attribute syscalls.
package exattr

import (
	"unicode/utf8"

	"github.com/intel-hpdd/logging/debug"
	"github.com/pkg/xattr"
	"github.com/rcrowley/go-metrics"

	"github.com/wastore/go-exattr/pkg/errtag"
)

// ErrNotSupported reports that this OS or build has no extended
// attribute support.
var ErrNotSupported = errtag.ErrNotSupported

// errNameDecode is the fixed failure for an attribute name that is not
// valid text. It is never mapped to a code tag; a bad name is a
// data-integrity problem, not an OS error.
var errNameDecode = errtag.Message("failed to decode attribute name")

// Per-operation call and failure counts on the default registry.
var (
	getCalls    = metrics.GetOrRegisterCounter("exattr.get", nil)
	setCalls    = metrics.GetOrRegisterCounter("exattr.set", nil)
	listCalls   = metrics.GetOrRegisterCounter("exattr.list", nil)
	removeCalls = metrics.GetOrRegisterCounter("exattr.remove", nil)
	failures    = metrics.GetOrRegisterCounter("exattr.failures", nil)
)

// Supported returns whether extended attributes are available on this
// OS and build. The result is fixed for the life of the process.
func Supported() bool {
	return xattr.XATTR_SUPPORTED
}

// Get returns the value of the named attribute on path. The second
// return is false, with a nil error, when the attribute does not
// exist; absence is not a failure.
func Get(path, name string) ([]byte, bool, error) {
	getCalls.Inc(1)
	if !Supported() {
		failures.Inc(1)
		return nil, false, errtag.NotSupported(ErrNotSupported)
	}
	value, err := xattr.Get(path, name)
	if err != nil {
		if tag, ok := errtag.TagOf(err); ok && tag == errtag.ENODATA {
			return nil, false, nil
		}
		failures.Inc(1)
		debug.Printf("getxattr %s %s: %s", path, name, err)
		return nil, false, errtag.Classify(err)
	}
	return value, true, nil
}

// Set creates or replaces the named attribute on path with value. The
// write is atomic at attribute granularity; that guarantee is the
// OS's, not this package's.
func Set(path, name string, value []byte) error {
	setCalls.Inc(1)
	if !Supported() {
		failures.Inc(1)
		return errtag.NotSupported(ErrNotSupported)
	}
	if err := xattr.Set(path, name, value); err != nil {
		failures.Inc(1)
		debug.Printf("setxattr %s %s: %s", path, name, err)
		return errtag.Classify(err)
	}
	return nil
}

// List returns the names of all attributes set on path. Every name
// must be valid UTF-8; a single undecodable name fails the whole call
// and no partial listing is returned.
func List(path string) ([]string, error) {
	listCalls.Inc(1)
	if !Supported() {
		failures.Inc(1)
		return nil, errtag.NotSupported(ErrNotSupported)
	}
	names, err := xattr.List(path)
	if err != nil {
		failures.Inc(1)
		debug.Printf("listxattr %s: %s", path, err)
		return nil, errtag.Classify(err)
	}
	for _, name := range names {
		if !utf8.ValidString(name) {
			failures.Inc(1)
			debug.Printf("listxattr %s: undecodable name %q", path, name)
			return nil, errNameDecode
		}
	}
	return names, nil
}

// Remove deletes the named attribute from path. Removing an attribute
// that does not exist is a failure, surfaced from the OS.
func Remove(path, name string) error {
	removeCalls.Inc(1)
	if !Supported() {
		failures.Inc(1)
		return errtag.NotSupported(ErrNotSupported)
	}
	if err := xattr.Remove(path, name); err != nil {
		failures.Inc(1)
		debug.Printf("removexattr %s %s: %s", path, name, err)
		return errtag.Classify(err)
	}
	return nil
}
