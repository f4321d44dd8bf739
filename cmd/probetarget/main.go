package main

import (
	"os"

	"github.com/probekit/customprobe/cmd/lib/probetarget"
)

func main() {
	os.Exit(probetarget.Run())
}
