package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/sortie/cmd/sortie"
	"github.com/arthur-debert/sortie/pkg/style"
)

func main() {
	// SIGINT stops a run between files; the partial summary is still printed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := sortie.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	code := sortie.ExitCode(err)
	if code != sortie.ExitInterrupted {
		fmt.Fprintln(os.Stderr, style.FailedStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", rootCmd.Name())
	}
	stop()
	os.Exit(code)
}
