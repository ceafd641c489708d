// cmd/strivekit/main.go
//
// Entry point for the strivekit CLI. All commands live in internal/cli.

package main

import (
	"fmt"
	"os"

	"github.com/strivetech/strivekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
