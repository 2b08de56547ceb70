// SPDX-License-Identifier: MIT

// Command skillgraph solves Gaussian skill factor graphs described in YAML.
//
//	skillgraph solve -c graph.yaml
//	skillgraph plan --weights 1,2,-1
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "skillgraph:", err)
		stop()
		os.Exit(1)
	}
}
