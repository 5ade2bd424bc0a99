package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sandbox/internal/logging"
	"sandbox/internal/sorting"
	"sandbox/internal/store"
)

var sortCmd = &cobra.Command{
	Use:   "sort [numbers...]",
	Short: "Bubble sort a list of integers",
	Long: `Sorts integers with the bubble sort from the Chat lesson.

Numbers may be given as arguments or read from files (whitespace or comma
separated). Multiple files are sorted concurrently and printed in order.

Examples:
  sandbox sort 5 2 9 1 5 6
  sandbox sort --desc 5,2,9
  sandbox sort --file a.txt --file b.txt`,
	RunE: runSort,
}

var (
	sortDesc  bool
	sortFiles []string
)

func init() {
	sortCmd.Flags().BoolVar(&sortDesc, "desc", false, "Sort in descending order (the Edit lesson variant)")
	sortCmd.Flags().StringSliceVarP(&sortFiles, "file", "f", nil, "Read numbers from file (repeatable)")
}

// parseInts parses integers separated by whitespace and/or commas.
func parseInts(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", f)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func sortInts(xs []int) []int {
	if sortDesc {
		return sorting.BubbleSortDescending(xs)
	}
	return sorting.BubbleSort(xs)
}

func runSort(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	log := logging.Get(logging.CategorySort)
	out := cmd.OutOrStdout()

	if len(sortFiles) > 0 {
		if len(args) > 0 {
			return fmt.Errorf("pass numbers as arguments or with --file, not both")
		}
		results, err := sortFilesConcurrently(ctx, sortFiles)
		for i, res := range results {
			if res.sorted == nil {
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", sortFiles[i], formatInts(res.sorted))
			recordHistory(ctx, store.KindSort, res.input, formatInts(res.sorted), nil)
		}
		return err
	}

	numbers, err := parseInts(strings.Join(args, " "))
	if err != nil {
		return err
	}
	input := formatInts(numbers)
	sorted := sortInts(numbers)

	log.Debug("sorted input", zap.Int("n", len(sorted)), zap.Bool("desc", sortDesc))
	fmt.Fprintln(out, formatInts(sorted))
	recordHistory(ctx, store.KindSort, input, formatInts(sorted), nil)
	return nil
}

// fileSort is one file's parsed numbers, formatted before sorting, and the sorted result.
type fileSort struct {
	input  string
	sorted []int
}

// sortFilesConcurrently reads and sorts each file in its own goroutine.
// results[i] belongs to paths[i]; on error the remaining entries may be empty.
func sortFilesConcurrently(ctx context.Context, paths []string) ([]fileSort, error) {
	results := make([]fileSort, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			numbers, err := parseInts(string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			input := formatInts(numbers)
			results[i] = fileSort{input: input, sorted: sortInts(numbers)}
			logging.Get(logging.CategorySort).Debug("sorted file",
				zap.String("path", path), zap.Int("n", len(numbers)))
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
