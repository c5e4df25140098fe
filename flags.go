// +build linux darwin freebsd netbsd solaris

package exattr

import (
	"github.com/intel-hpdd/logging/debug"
	"github.com/pkg/xattr"

	"github.com/wastore/go-exattr/pkg/errtag"
)

// Flags for SetWithFlags.
const (
	// Create fails if the attribute already exists.
	Create = xattr.XATTR_CREATE
	// Replace fails if the attribute does not already exist.
	Replace = xattr.XATTR_REPLACE
)

// SetWithFlags is Set with exclusive-create or must-exist-replace
// semantics. The flag contract is enforced by the OS, not here.
func SetWithFlags(path, name string, value []byte, flags int) error {
	setCalls.Inc(1)
	if err := xattr.SetWithFlags(path, name, value, flags); err != nil {
		failures.Inc(1)
		debug.Printf("setxattr %s %s: %s", path, name, err)
		return errtag.Classify(err)
	}
	return nil
}
