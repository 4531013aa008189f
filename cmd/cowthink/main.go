package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cowsay/internal/cli"
	"github.com/arthur-debert/cowsay/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd("cowthink")
	if err := rootCmd.Execute(); err != nil {
		// Errors from rendering were already printed in the output format.
		if !cli.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
