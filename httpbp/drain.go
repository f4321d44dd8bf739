package httpbp

import (
	"io"

	"github.com/probekit/customprobe/errorsbp"
)

// DrainAndClose reads r fully then closes it.
//
// The close always happens, even when reading fails,
// and both errors are reported.
func DrainAndClose(r io.ReadCloser) error {
	var batch errorsbp.Batch
	_, err := io.Copy(io.Discard, r)
	batch.AddPrefix("httpbp: drain body", err)
	batch.AddPrefix("httpbp: close body", r.Close())
	return batch.Compile()
}
