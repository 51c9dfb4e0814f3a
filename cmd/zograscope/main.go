// Command zograscope compares and highlights Go source files using a
// syntax-aware tree comparison instead of a line-level diff.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zograscope",
		Short: "Syntax-aware source code comparison",
		Long:  "zograscope compares source files by matching their parsed syntax trees, reporting renames and moves instead of raw line churn.",
	}

	rootCmd.AddCommand(newDiffCmd(), newHighlightCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
