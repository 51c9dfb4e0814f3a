package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/oxhq/zograscope/internal/align"
	"github.com/oxhq/zograscope/internal/compare"
	"github.com/oxhq/zograscope/internal/config"
	"github.com/oxhq/zograscope/internal/lang/golang"
	"github.com/oxhq/zograscope/internal/project"
	"github.com/oxhq/zograscope/internal/walk"
	"github.com/oxhq/zograscope/render"
)

func newDiffCmd() *cobra.Command {
	var skipRefine bool
	var exclude []string

	cmd := &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Compare two files or directories",
		Long:  "diff compares Go source by matching syntax trees instead of lines, falling back to a unified line diff for non-Go or oversized files.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			left, right := args[0], args[1]

			leftInfo, err := os.Stat(left)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			if leftInfo.IsDir() {
				if err := diffDirectories(cfg, left, right, exclude, skipRefine); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				return
			}

			if err := diffFiles(cfg, left, right, skipRefine); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&skipRefine, "skip-refine", false, "skip the tree-edit-distance refinement pass")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "doublestar glob(s) to exclude in directory mode")

	return cmd
}

func diffDirectories(cfg *config.Config, leftRoot, rightRoot string, exclude []string, skipRefine bool) error {
	w := walk.New()
	results, err := w.Walk(context.Background(), walk.Scope{
		Path:     leftRoot,
		Exclude:  exclude,
		MaxDepth: cfg.MaxWalkDepth,
	})
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	for r := range results {
		if r.Error != nil {
			fmt.Fprintln(os.Stderr, r.Error)
			continue
		}
		rel, err := filepath.Rel(leftRoot, r.Path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		rightPath := filepath.Join(rightRoot, rel)
		if _, err := os.Stat(rightPath); err != nil {
			fmt.Printf("only in %s: %s\n", leftRoot, rel)
			continue
		}
		fmt.Printf("--- %s\n", rel)
		if err := diffFiles(cfg, r.Path, rightPath, skipRefine); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return nil
}

func diffFiles(cfg *config.Config, leftPath, rightPath string, skipRefine bool) error {
	leftSrc, err := os.ReadFile(leftPath)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	rightSrc, err := os.ReadFile(rightPath)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	if !isGoFile(leftPath) || !isGoFile(rightPath) ||
		len(leftSrc) > cfg.MaxFileSizeBytes || len(rightSrc) > cfg.MaxFileSizeBytes {
		return printUnifiedDiff(leftPath, rightPath, leftSrc, rightSrc)
	}

	parser := golang.NewParser()
	ctx := context.Background()
	t1, err := parser.Parse(ctx, leftSrc)
	if err != nil {
		return printUnifiedDiff(leftPath, rightPath, leftSrc, rightSrc)
	}
	t2, err := parser.Parse(ctx, rightSrc)
	if err != nil {
		return printUnifiedDiff(leftPath, rightPath, leftSrc, rightSrc)
	}

	if err := compare.Compare(t1, t2, compare.Options{SkipRefine: skipRefine}); err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	leftLines := project.Project(t1.Root)
	rightLines := project.Project(t2.Root)
	printAlignedDiff(align.MakeDiff(leftLines, rightLines))
	return nil
}

func isGoFile(path string) bool {
	return strings.HasSuffix(path, ".go")
}

func printUnifiedDiff(leftPath, rightPath string, leftSrc, rightSrc []byte) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(leftSrc)),
		B:        difflib.SplitLines(string(rightSrc)),
		FromFile: leftPath,
		ToFile:   rightPath,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	fmt.Print(text)
	return nil
}

func printAlignedDiff(lines []render.DiffLine) {
	for _, dl := range lines {
		switch dl.Kind {
		case render.Identical:
			fmt.Printf("  %4d %s\n", dl.Left.Number, dl.Left.Text)
		case render.Different:
			fmt.Printf("- %4d %s\n", dl.Left.Number, dl.Left.Text)
			fmt.Printf("+ %4d %s\n", dl.Right.Number, dl.Right.Text)
		case render.Left:
			fmt.Printf("- %4d %s\n", dl.Left.Number, dl.Left.Text)
		case render.Right:
			fmt.Printf("+ %4d %s\n", dl.Right.Number, dl.Right.Text)
		case render.Fold:
			fmt.Printf("  ... %d unchanged lines ...\n", dl.FoldCount)
		}
	}
}
