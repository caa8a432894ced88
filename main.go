// hellotcp - a minimal TCP greeting server and interactive client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hellotcp/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "hellotcp: %v\n", err)
		os.Exit(1)
	}
}
