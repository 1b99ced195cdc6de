//go:build linux || freebsd

package atomicfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data. fdatasync is enough: the rename that
// follows is what publishes the metadata.
func syncFile(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
