// +build !linux,!darwin,!freebsd,!netbsd,!solaris

package exattr

import "github.com/wastore/go-exattr/pkg/errtag"

// Flags for SetWithFlags. Unused on platforms without extended
// attribute support.
const (
	Create  = 0x1
	Replace = 0x2
)

// SetWithFlags always fails on platforms without extended attribute
// support.
func SetWithFlags(path, name string, value []byte, flags int) error {
	setCalls.Inc(1)
	failures.Inc(1)
	return errtag.NotSupported(ErrNotSupported)
}
