package main

import (
	"os"

	"github.com/probekit/customprobe/cmd/lib/probe"
)

func main() {
	os.Exit(probe.Run())
}
