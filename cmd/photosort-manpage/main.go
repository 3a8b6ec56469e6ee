package main

import (
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/photosort/cmd/photosort"
	"github.com/arthur-debert/photosort/pkg/logging"
)

// Writes the man page of the root command to stdout, for packaging.
func main() {
	rootCmd := photosort.NewRootCmd()
	logging.Must(doc.GenMan(rootCmd, photosort.ManHeader(), os.Stdout), "Failed to generate man page")
}
