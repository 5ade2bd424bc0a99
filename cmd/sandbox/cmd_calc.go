package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sandbox/internal/calculator"
	"sandbox/internal/logging"
	"sandbox/internal/store"
)

var calcCmd = &cobra.Command{
	Use:   "calc <add|subtract|multiply|divide> <a> <b> [c]",
	Short: "Run a sandbox calculator operation",
	Long: `Evaluates one of the manual-testing calculator operations.

add takes two or three integers; subtract, multiply and divide take two.
divide returns a decimal quotient and rejects a zero divisor.
Put -- before the operands when any of them is negative.

Examples:
  sandbox calc add 1 2 3
  sandbox calc divide 7 2`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runCalc,
}

var accumulateCmd = &cobra.Command{
	Use:   "accumulate <step>...",
	Short: "Run a chain of steps on a running total",
	Long: `Applies steps left to right to an accumulator that starts at zero and
prints the final total. Steps are "add N", "sub N" and "reset".
Put -- before the steps when any value is negative.

Example:
  sandbox accumulate add 5 sub 3 add 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAccumulate,
}

var accumulateTrace bool

func init() {
	accumulateCmd.Flags().BoolVar(&accumulateTrace, "trace", false, "Print the total after every step")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	op, err := calculator.ParseOp(args[0])
	if err != nil {
		return err
	}

	operands := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid operand %q: %w", a, err)
		}
		operands = append(operands, n)
	}

	input := strings.Join(append([]string{string(op)}, args[1:]...), " ")
	result, err := calculator.Apply(op, operands)
	if err != nil {
		logging.Get(logging.CategoryCalc).Debug("calc rejected", zap.String("input", input), zap.Error(err))
		recordHistory(ctx, store.KindCalc, input, "", err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	recordHistory(ctx, store.KindCalc, input, result.String(), nil)
	return nil
}

// step is one parsed accumulate instruction.
type step struct {
	verb  string
	value float64
}

// parseSteps parses "add N", "sub N" and "reset" tokens.
func parseSteps(args []string) ([]step, error) {
	var steps []step
	for i := 0; i < len(args); i++ {
		verb := strings.ToLower(args[i])
		switch verb {
		case "reset":
			steps = append(steps, step{verb: verb})
		case "add", "sub", "subtract":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s needs a value", verb)
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for %s", args[i+1], verb)
			}
			if verb == "subtract" {
				verb = "sub"
			}
			steps = append(steps, step{verb: verb, value: v})
			i++
		default:
			return nil, fmt.Errorf("unknown step %q (want add, sub or reset)", args[i])
		}
	}
	return steps, nil
}

func runAccumulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	steps, err := parseSteps(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	acc := calculator.NewAccumulator()
	for _, s := range steps {
		switch s.verb {
		case "add":
			acc.Add(s.value)
		case "sub":
			acc.Subtract(s.value)
		case "reset":
			acc.Reset()
		}
		if accumulateTrace {
			if s.verb == "reset" {
				fmt.Fprintf(out, "reset -> %s\n", formatNumber(acc.Result()))
			} else {
				fmt.Fprintf(out, "%s %s -> %s\n", s.verb, formatNumber(s.value), formatNumber(acc.Result()))
			}
		}
	}

	result := formatNumber(acc.Result())
	logging.Get(logging.CategoryCalc).Debug("accumulated", zap.Int("steps", len(steps)), zap.String("result", result))
	fmt.Fprintln(out, result)
	recordHistory(ctx, store.KindAccumulate, strings.Join(args, " "), result, nil)
	return nil
}
