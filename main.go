// File: cpp-package-manager/main.go
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"cppkg/pkg/cli"
	"cppkg/pkg/ui"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := ui.NewLogger(stderr, false, false)

	workDir, err := os.Getwd()
	if err != nil {
		logger.Error("could not determine working directory", "err", err)
		return 1
	}

	c := cli.New(cli.NewApp(afero.NewOsFs(), workDir, stdout, stderr))
	c.SetArgs(args)
	c.SetOutput(stdout, stderr)

	if err := c.Execute(ctx); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
