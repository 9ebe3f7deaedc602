// SPDX-License-Identifier: MIT

// Command ecd computes minimum even cycle decompositions of graphs.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/evencycle/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
