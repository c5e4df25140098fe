// +build !linux,!darwin,!freebsd,!netbsd,!solaris

package errtag

import "syscall"

// errnoTag has no fixed table on platforms without extended attribute
// support; every code takes the descriptive-message fallback.
func errnoTag(errno syscall.Errno) (Tag, bool) {
	return "", false
}
