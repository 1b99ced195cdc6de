//go:build darwin

package atomicfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data. F_FULLFSYNC also flushes the drive cache.
func syncFile(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
