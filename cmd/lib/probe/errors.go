package probe

import (
	"errors"
	"fmt"
	"net"
)

// Stage is the step of a probe an Error happened in.
type Stage string

// Stage values.
const (
	StageParse   Stage = "parse"
	StageDial    Stage = "dial"
	StageRequest Stage = "request"
	StageRead    Stage = "read"
)

// Error is returned when a probe could not obtain a response.
type Error struct {
	Stage Stage
	URL   string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("probe: %s %q: %v", e.Stage, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// requestStage tells connect failures apart from failures after the
// connection was established.
func requestStage(err error) Stage {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return StageDial
	}
	return StageRequest
}
