// Package atomicfile replaces files so readers see either the old or the
// new contents, never a partial write.
package atomicfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joshuapare/varkit/internal/logger"
)

// Options tunes WriteFile.
type Options struct {
	// Perm is applied to the new file. Zero keeps the existing file's
	// mode, or 0o644 for a new file.
	Perm fs.FileMode

	// FullSync requests F_FULLFSYNC on darwin. Ignored elsewhere.
	FullSync bool
}

// WriteFile writes data to a temporary file next to path, syncs it and
// renames it over path. A symlink at path is followed so the link itself
// survives.
func WriteFile(path string, data []byte, opts Options) error {
	target, err := resolve(path)
	if err != nil {
		return err
	}

	perm := opts.Perm
	if perm == 0 {
		perm = 0o644
		if fi, err := os.Stat(target); err == nil {
			perm = fi.Mode().Perm()
		}
	}

	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("atomicfile: create temp for %s: %w", target, err)
	}
	tmp := f.Name()

	fail := func(err error) error {
		_ = f.Close()
		if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.L().Error("atomicfile: remove temp file", "path", tmp, "err", rmErr)
		}
		return err
	}

	if _, err := f.Write(data); err != nil {
		return fail(fmt.Errorf("atomicfile: write %s: %w", tmp, err))
	}
	if err := syncFile(f, opts.FullSync); err != nil {
		return fail(fmt.Errorf("atomicfile: sync %s: %w", tmp, err))
	}
	if err := f.Chmod(perm); err != nil && !errors.Is(err, errors.ErrUnsupported) {
		return fail(fmt.Errorf("atomicfile: chmod %s: %w", tmp, err))
	}
	if err := f.Close(); err != nil {
		return fail(fmt.Errorf("atomicfile: close %s: %w", tmp, err))
	}
	if err := os.Rename(tmp, target); err != nil {
		return fail(fmt.Errorf("atomicfile: rename %s: %w", tmp, err))
	}
	return nil
}

// resolve follows a symlink at path. A missing path is returned as is.
func resolve(path string) (string, error) {
	fi, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("atomicfile: stat %s: %w", path, err)
	}
	if fi.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Dangling link: write where it points.
		link, lerr := os.Readlink(path)
		if lerr != nil {
			return "", fmt.Errorf("atomicfile: readlink %s: %w", path, lerr)
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		return link, nil
	}
	if err != nil {
		return "", fmt.Errorf("atomicfile: resolve %s: %w", path, err)
	}
	return target, nil
}
