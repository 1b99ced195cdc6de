//go:build !linux && !freebsd && !darwin && !windows

package atomicfile

import "os"

func syncFile(f *os.File, _ bool) error {
	return f.Sync()
}
