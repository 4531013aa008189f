package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cowsay/internal/cli"
	"github.com/arthur-debert/cowsay/pkg/ui/styles"
)

func main() {
	// A cowthink symlink to this binary thinks instead of saying.
	rootCmd := cli.NewRootCmd(os.Args[0])
	if err := rootCmd.Execute(); err != nil {
		// Errors from rendering were already printed in the output format.
		if !cli.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
