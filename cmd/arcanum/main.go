package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local overrides; a missing file is fine.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
