//go:build windows

package atomicfile

import (
	"os"

	"golang.org/x/sys/windows"
)

func syncFile(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
