// ABOUTME: Entry point for the booktrack CLI
// ABOUTME: Terminal client for tracking a personal book library

package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rantiputri/booktrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
