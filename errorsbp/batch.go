package errorsbp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	_ error = Batch{}
	_ error = (*Batch)(nil)
)

// Batch is an error that can contain multiple errors.
//
// The zero value is an empty batch ready to use.
type Batch struct {
	errors []error
}

func (be Batch) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "errorsbp.Batch: %d error(s)", len(be.errors))
	for i, err := range be.errors {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Len returns the number of errors in the batch.
func (be Batch) Len() int {
	return len(be.errors)
}

// As implements the helper interface for errors.As.
//
// A target of *Batch or **Batch receives the batch itself,
// any other target is matched against the errors in the batch in order.
func (be Batch) As(v interface{}) bool {
	switch target := v.(type) {
	case *Batch:
		*target = be
		return true
	case **Batch:
		*target = &be
		return true
	}
	for _, err := range be.errors {
		if errors.As(err, v) {
			return true
		}
	}
	return false
}

// Is implements the helper interface for errors.Is.
//
// Add never stores a Batch inside a Batch, so Is and As cannot recurse
// into themselves.
func (be Batch) Is(target error) bool {
	for _, err := range be.errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Add adds errors into the batch, skipping nils.
//
// When an added error is itself a Batch its errors are added instead.
func (be *Batch) Add(errs ...error) {
	be.add("", errs)
}

// AddPrefix is Add with every added error reported as "prefix: err".
//
// The wrapped errors stay reachable through errors.Is and errors.As.
func (be *Batch) AddPrefix(prefix string, errs ...error) {
	be.add(prefix, errs)
}

func (be *Batch) add(prefix string, errs []error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		var batch Batch
		if errors.As(err, &batch) {
			for _, e := range batch.errors {
				be.errors = append(be.errors, prefixError(prefix, e))
			}
			continue
		}
		be.errors = append(be.errors, prefixError(prefix, err))
	}
}

// Compile returns nil for an empty batch, the only error for a batch of one,
// and the batch itself otherwise.
func (be Batch) Compile() error {
	switch len(be.errors) {
	case 0:
		return nil
	case 1:
		return be.errors[0]
	default:
		return be
	}
}

// Clear empties the batch.
func (be *Batch) Clear() {
	be.errors = nil
}

// GetErrors returns a copy of the errors in the batch.
func (be Batch) GetErrors() []error {
	errs := make([]error, len(be.errors))
	copy(errs, be.errors)
	return errs
}

// BatchSize returns the number of errors err carries:
// Len() for a Batch, 1 for any other non-nil error and 0 for nil.
func BatchSize(err error) int {
	if err == nil {
		return 0
	}
	var batch Batch
	if errors.As(err, &batch) {
		return batch.Len()
	}
	return 1
}

// prefixError is used instead of fmt.Errorf(prefix+": %w", err) because the
// prefix may contain format verbs.
func prefixError(prefix string, err error) error {
	if prefix == "" {
		return err
	}
	return &prefixedError{
		msg: prefix + ": " + err.Error(),
		err: err,
	}
}

type prefixedError struct {
	msg string
	err error
}

func (e *prefixedError) Error() string {
	return e.msg
}

func (e *prefixedError) Unwrap() error {
	return e.err
}
