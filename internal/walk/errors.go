package walk

import (
	"errors"
	"io/fs"
	"syscall"
)

// Ignorable reports whether err is one of the access or I/O errors expected
// while walking a live filesystem: permission denied, an entry that vanished
// or changed type under us, a symlink loop, an overlong name, or a failed read.
func Ignorable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, fs.ErrPermission),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ELOOP),
		errors.Is(err, syscall.ENAMETOOLONG),
		errors.Is(err, syscall.EIO):
		return true
	default:
		return false
	}
}
