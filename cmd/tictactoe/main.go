package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tictactoe/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tictactoe(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func tictactoe(ctx context.Context) error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}
