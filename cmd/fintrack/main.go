package main

import (
	"fmt"
	"os"

	"fintrack/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	app := cli.NewApp(version)
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
