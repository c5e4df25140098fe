package errtag

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// errnoTag maps a native error code to its symbolic tag. Darwin
// reports a missing attribute as ENOATTR rather than ENODATA; both
// are folded into the ENODATA tag.
func errnoTag(errno syscall.Errno) (Tag, bool) {
	switch errno {
	case unix.E2BIG:
		return E2BIG, true
	case unix.EACCES:
		return EACCES, true
	case unix.EINVAL:
		return EINVAL, true
	case unix.EIO:
		return EIO, true
	case unix.ENODATA, unix.ENOATTR:
		return ENODATA, true
	case unix.ENOENT:
		return ENOENT, true
	case unix.ENOMEM:
		return ENOMEM, true
	case unix.ENOSPC:
		return ENOSPC, true
	case unix.EPERM:
		return EPERM, true
	case unix.EROFS:
		return EROFS, true
	case unix.ENOTSUP:
		return ENOTSUP, true
	}
	return "", false
}
