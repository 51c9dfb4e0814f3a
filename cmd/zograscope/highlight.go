package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/zograscope/internal/highlight"
	"github.com/oxhq/zograscope/internal/lang/golang"
)

func newHighlightCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print a single Go file with syntax-category coloring",
		Long:  "highlight parses a Go file and prints it with one color per lexical category.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			src, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			t, err := golang.NewParser().Parse(context.Background(), src)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			canes := highlight.HighlightLines(t.Root, golang.Provider{}, highlight.Range{From: from, To: to}, highlight.Options{
				Original: true,
			})
			for i, cane := range canes {
				fmt.Printf("%4d %s\n", from+i, renderCane(cane))
			}
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "first line to print")
	cmd.Flags().IntVar(&to, "to", 0, "last line to print (0 = end of file)")

	return cmd
}
