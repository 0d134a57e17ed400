// SPDX-License-Identifier: MIT

// Command lvtopo builds and reduces filtered simplicial complexes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvtopo/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lvtopo:", err)
		stop()
		os.Exit(1)
	}
}
