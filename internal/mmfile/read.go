package mmfile

import "os"

func noop() error { return nil }

// readAll is the non-mapping path: the file is read into the heap.
func readAll(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
