// gwydump inspects measurement container files: it lists channels and
// graphs, dumps the raw item tree and exports curve samples.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
