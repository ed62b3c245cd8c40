package main

import (
	"os"

	"ytup/cmd"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env if present; a plain environment works the same way.
	_ = godotenv.Load()
}

func main() {
	if err := cmd.Execute(); err != nil {
		// Root cause is already in the diagnostic log; the commands print
		// the operator-facing failure line themselves.
		os.Exit(1)
	}
}
