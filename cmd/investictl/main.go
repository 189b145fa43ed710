package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pubnicaragua/investi-documentacion2/internal/cli/commands"
	"github.com/pubnicaragua/investi-documentacion2/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'investictl --help' for usage.")
		}
		os.Exit(1)
	}
}
