package minio

import (
	"io/fs"
	"os"
)

// FS supplies file sizes and contents to the engine on cache misses. The
// engine calls Stat before ReadAll so it can classify oversized files
// without buffering them for admission.
//
// Implementations must be safe for concurrent use. Errors are propagated to
// callers verbatim; the engine adds no retries and imposes no timeouts of
// its own, so cancellation belongs at the adapter boundary.
type FS interface {
	// Stat returns the size in bytes of the file at path.
	Stat(path string) (int64, error)

	// ReadAll returns the full contents of the file at path. The returned
	// slice is owned by the engine; implementations must not retain it.
	ReadAll(path string) ([]byte, error)
}

// osFS is the default adapter backed by the operating system's filesystem.
type osFS struct{}

func (osFS) Stat(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrInvalid}
	}
	return info.Size(), nil
}

func (osFS) ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}
