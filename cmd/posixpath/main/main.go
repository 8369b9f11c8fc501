package main

import (
	"fmt"
	"os"

	posixpath "github.com/arthur-debert/posixpath/cmd/posixpath"
	"github.com/arthur-debert/posixpath/pkg/output/styles"
)

func main() {
	rootCmd := posixpath.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
