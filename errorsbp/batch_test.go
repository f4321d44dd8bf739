package errorsbp_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/probekit/customprobe/errorsbp"
)

func TestAdd(t *testing.T) {
	var batch errorsbp.Batch
	if batch.Len() != 0 {
		t.Errorf("A new Batch should contain zero errors: %v", batch.GetErrors())
	}

	batch.Add(nil, nil)
	if batch.Len() != 0 {
		t.Errorf("Nil errors should be skipped: %v", batch.GetErrors())
	}

	err0 := errors.New("foo")
	batch.Add(err0)
	if batch.Len() != 1 {
		t.Fatalf("Non-nil errors should be added: %v", batch.GetErrors())
	}
	if got := batch.GetErrors()[0]; got != err0 {
		t.Errorf("Expected %v, got %v", err0, got)
	}

	var another errorsbp.Batch
	batch.Add(another)
	if batch.Len() != 1 {
		t.Errorf("Empty batch should be skipped: %v", batch.GetErrors())
	}

	err1 := errors.New("bar")
	err2 := errors.New("foobar")
	another.Add(err1, err2)
	batch.Add(&another)
	if batch.Len() != 3 {
		t.Fatalf("The underlying errors should be added instead of the batch: %v", batch.GetErrors())
	}
	for i, want := range []error{err0, err1, err2} {
		if got := batch.GetErrors()[i]; got != want {
			t.Errorf("errors[%d]: expected %v, got %v", i, want, got)
		}
	}

	batch.Clear()
	if batch.Len() != 0 {
		t.Errorf("A cleared Batch should contain zero errors: %v", batch.GetErrors())
	}
}

func TestAddPrefix(t *testing.T) {
	var inner errorsbp.Batch
	inner.Add(errors.New("a"), errors.New("b"))

	var batch errorsbp.Batch
	batch.AddPrefix("body%s", fs.ErrClosed)
	batch.AddPrefix("conn", inner)
	batch.AddPrefix("", errors.New("c"))

	const want = "errorsbp.Batch: 4 error(s): body%s: file already closed; conn: a; conn: b; c"
	if got := batch.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(batch, fs.ErrClosed) {
		t.Error("Expected prefixed error to still match fs.ErrClosed")
	}
}

func TestCompile(t *testing.T) {
	var batch errorsbp.Batch
	if err := batch.Compile(); err != nil {
		t.Errorf("Empty batch should compile to nil, got %v", err)
	}

	err0 := errors.New("foo")
	batch.Add(err0)
	if err := batch.Compile(); err != err0 {
		t.Errorf("Single error batch should compile to %v, got %v", err0, err)
	}

	batch.Add(errors.New("bar"))
	err := batch.Compile()
	var compiled errorsbp.Batch
	if !errors.As(err, &compiled) {
		t.Fatalf("Expected compiled error to be a Batch, got %T", err)
	}
	if compiled.Len() != 2 {
		t.Errorf("Expected 2 errors, got %d", compiled.Len())
	}
}

func TestIsAs(t *testing.T) {
	var batch errorsbp.Batch
	batch.Add(errors.New("foo"), &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist})

	if !errors.Is(batch, fs.ErrNotExist) {
		t.Error("Expected batch to match fs.ErrNotExist")
	}
	if errors.Is(batch, fs.ErrPermission) {
		t.Error("Did not expect batch to match fs.ErrPermission")
	}

	var pathErr *fs.PathError
	if !errors.As(batch, &pathErr) {
		t.Fatal("Expected batch to contain a *fs.PathError")
	}
	if pathErr.Path != "/x" {
		t.Errorf("Expected path %q, got %q", "/x", pathErr.Path)
	}

	var ptr *errorsbp.Batch
	if !errors.As(batch, &ptr) {
		t.Fatal("Expected errors.As to *Batch to succeed")
	}
	if ptr.Len() != 2 {
		t.Errorf("Expected 2 errors, got %d", ptr.Len())
	}
}

func TestBatchSize(t *testing.T) {
	var batch errorsbp.Batch
	batch.Add(errors.New("a"), errors.New("b"), errors.New("c"))

	for _, c := range []struct {
		label string
		err   error
		want  int
	}{
		{label: "nil", err: nil, want: 0},
		{label: "single", err: errors.New("foo"), want: 1},
		{label: "batch", err: batch, want: 3},
		{label: "batch-pointer", err: &batch, want: 3},
	} {
		t.Run(c.label, func(t *testing.T) {
			if got := errorsbp.BatchSize(c.err); got != c.want {
				t.Errorf("BatchSize() = %d, want %d", got, c.want)
			}
		})
	}
}
