// This is the main entry point for the overlap CLI.
// Build with: go build -o bin/overlap ./cmd/overlap
// Usage: overlap FILE_A FILE_B
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
