// Package limitopen opens files whose readers cannot read past the size
// reported at open time.
package limitopen

import (
	"fmt"
	"io"
	"os"
)

// Open opens a path for read.
//
// It's similar to os.Open, but the returned io.ReadCloser stops at the size
// the system reported when the file was opened, which is also returned.
// Opening /dev/zero for example yields a reader that is immediately at EOF.
//
// It never returns both a non-nil r and a non-nil err.
// When err is nil it's the caller's responsibility to close r.
func Open(path string) (r io.ReadCloser, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("limitopen.Open: failed to open file %q: %w", path, err)
	}
	stats, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("limitopen.Open: failed to get the size of %q: %w", path, err)
	}
	size = stats.Size()
	return readCloser{
		Reader: io.LimitReader(f, size),
		Closer: f,
	}, size, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
