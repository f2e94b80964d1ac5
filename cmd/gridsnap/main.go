// gridsnap - grid layout engine for dashboard-style layouts
//
// Reads a layout file (JSON, YAML, TOML, CSV or XLSX) and answers layout
// questions about it: grid size, overlaps, free positions, and the result
// of moving, resizing or compacting items.
//
// Build:
//   go build -o gridsnap ./cmd/gridsnap
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o gridsnap.exe ./cmd/gridsnap
//   GOOS=darwin  GOARCH=arm64 go build -o gridsnap-darwin ./cmd/gridsnap

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/gridsnap/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
