// Package main is the entry point for the tradeinctl operator CLI.
package main

import (
	"os"

	"tradein_valuation/cmd/tradeinctl/cmd"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
