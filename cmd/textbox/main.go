package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/msto63/textbox/cmd/textbox/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		cmd.PrintError(os.Stderr, err)
		stop()
		os.Exit(cmd.ExitCode(err))
	}
}
