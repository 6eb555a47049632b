package main

import (
	"os"

	"docugen-cli/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Local .env files are a convenience for DOCUGEN_* overrides; absence
	// is not an error.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
