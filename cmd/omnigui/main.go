// Command omnigui renders and runs the OmniGUI demo tree.
package main

import (
	"fmt"
	"os"

	"github.com/omnigui/omnigui/cmd/omnigui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
