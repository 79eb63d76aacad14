package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/reactspring/cmd/reactspring"
	"github.com/arthur-debert/reactspring/pkg/ui/styles"
)

func main() {
	rootCmd := reactspring.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
