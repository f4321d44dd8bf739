package probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/probekit/customprobe/errorsbp"
	"github.com/probekit/customprobe/httpbp"
	"github.com/probekit/customprobe/log"
)

// Exit codes returned by Run and RunArgs.
const (
	// ExitOK means the target answered 418 with a JSON content type.
	ExitOK = 0
	// ExitKO means a usage error, or a response that did not meet the
	// condition.
	ExitKO = 1
	// ExitFault means the probe could not get a response at all.
	ExitFault = 2
)

// Usage is printed when the probe is not given exactly one argument.
const Usage = "Usage: probe.py url"

// Run runs the probe with os.Args, os.Stdout and os.Stderr.
//
// Your main function usually should look like:
//
//	func main() {
//		os.Exit(probe.Run())
//	}
func Run() int {
	return RunArgs(os.Args, os.Stdout, os.Stderr)
}

// RunArgs is the testable version of Run.
//
// In production code it expects os.Args as args.
func RunArgs(args []string, stdout, stderr io.Writer) int {
	return Runner{}.Run(args, stdout, stderr)
}

// Runner runs probes.
//
// The zero value is ready to use and dials with HTTPDialer.
type Runner struct {
	Dial Dialer
}

func (r Runner) dialer() Dialer {
	if r.Dial == nil {
		return HTTPDialer{}
	}
	return r.Dial
}

// Run is RunArgs with r's Dialer.
func (r Runner) Run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, Usage)
		return ExitKO
	}
	rawURL := args[1]
	fmt.Fprintf(stdout, "Checking %s...\n", rawURL)

	result, err := r.Probe(rawURL)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFault
	}
	fmt.Fprintln(stdout, result.Verdict())
	if result.OK() {
		return ExitOK
	}
	return ExitKO
}

// Probe sends one GET request for the path of rawURL to its host and
// returns the status code and content type of the response.
//
// The connection is closed exactly once before Probe returns, whatever the
// outcome. All returned errors are of type *Error.
//
// A failure to close the connection does not fail an otherwise successful
// probe. It is added to the returned error when the probe failed anyway.
func (r Runner) Probe(rawURL string) (result Result, err error) {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return Result{}, err
	}

	conn, err := r.dialer().Dial(target.Host, DefaultConnectTimeout)
	if err != nil {
		return Result{}, &Error{Stage: StageDial, URL: rawURL, Err: err}
	}
	defer func() {
		closeErr := conn.Close()
		if closeErr == nil {
			return
		}
		var probeErr *Error
		if !errors.As(err, &probeErr) {
			log.Debugw("Failed to close probe connection", "url", rawURL, "err", closeErr)
			return
		}
		var batch errorsbp.Batch
		batch.Add(probeErr.Err)
		batch.AddPrefix("close connection", closeErr)
		probeErr.Err = batch.Compile()
	}()

	resp, err := conn.Get(target.Path)
	if err != nil {
		return Result{}, &Error{Stage: requestStage(err), URL: rawURL, Err: err}
	}
	result = Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get(httpbp.ContentTypeHeader),
	}
	if err := httpbp.DrainAndClose(resp.Body); err != nil {
		return Result{}, &Error{Stage: StageRead, URL: rawURL, Err: err}
	}
	return result, nil
}
