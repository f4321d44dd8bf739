// Package batchcloser closes a group of resources together.
package batchcloser

import (
	"io"

	"github.com/probekit/customprobe/errorsbp"
)

// Func adapts a plain function to io.Closer.
type Func func() error

// Close calls f.
func (f Func) Close() error {
	return f()
}

type namedCloser struct {
	name   string
	closer io.Closer
}

// BatchCloser closes the closers added to it in reverse order,
// like deferred calls.
//
// The zero value is ready to use. It is not safe for concurrent use.
type BatchCloser struct {
	closers []namedCloser
}

var _ io.Closer = (*BatchCloser)(nil)

// Add adds closer under name, used to prefix its Close error.
func (bc *BatchCloser) Add(name string, closer io.Closer) {
	bc.closers = append(bc.closers, namedCloser{name: name, closer: closer})
}

// Close closes every closer, last added first, even when some fail.
//
// The errors returned are batched with errorsbp.Batch and prefixed with the
// name they were added with. Closers are removed as they are closed, so a
// second Close is a no-op.
func (bc *BatchCloser) Close() error {
	var batch errorsbp.Batch
	for i := len(bc.closers) - 1; i >= 0; i-- {
		c := bc.closers[i]
		batch.AddPrefix(c.name, c.closer.Close())
	}
	bc.closers = nil
	return batch.Compile()
}

// Len returns the number of closers not closed yet.
func (bc *BatchCloser) Len() int {
	return len(bc.closers)
}
