package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/photosort/cmd/photosort"
	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/style"
)

func main() {
	rootCmd := photosort.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Usage errors get the help of the root command
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Help()
		}

		os.Exit(1)
	}
}
