package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cowsay/internal/cli"
	"github.com/arthur-debert/cowsay/internal/version"
)

func main() {
	name := "cowsay"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	rootCmd := cli.NewRootCmd(name)

	header := &doc.GenManHeader{
		Title:   strings.ToUpper(name),
		Section: "1",
		Source:  name + " " + version.Version,
		Manual:  "cowsay manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
