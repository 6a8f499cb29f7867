package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sortie/cmd/sortie"
	"github.com/arthur-debert/sortie/internal/version"
)

func main() {
	rootCmd := sortie.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SORTIE",
		Section: "1",
		Source:  "sortie " + version.Version,
		Manual:  "sortie manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
