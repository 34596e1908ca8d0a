// Command vitro inspects markup documents on the headless toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/vitro/cmd/vitro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
