package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"md-issues/internal/cli"
	"md-issues/internal/config"
)

// version is set at build time using -ldflags.
var version = "dev"

// Loads .env and the environment, then runs the import command.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := config.LoadConfig()

	return cli.NewRootCommand(cfg, version).ExecuteContext(context.Background())
}
