package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/intel/forGoBitonic/bitonic"
)

func newSortCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values given as arguments or read from --input",
		Long: `Sort values given as arguments or read from --input, and print them
on one line. The number of values must be 0, 1, or a power of two.`,
		RunE: a.runSort,
	}
	flags := cmd.Flags()
	flags.String("type", "string", "element type: int, float, or string")
	flags.String("strategy", bitonic.Sequential.String(), "execution strategy: sequential or parallel")
	flags.Int("workers", 0, "maximum number of goroutines of the parallel strategy (0 means GOMAXPROCS)")
	flags.Int("grain", bitonic.DefaultGrainSize, "range size at and below which the parallel strategy sorts sequentially")
	flags.Bool("desc", false, "sort in descending order")
	flags.StringP("input", "i", "", "read whitespace separated values from a file, or - for stdin")
	return cmd
}

func (a *app) runSort(cmd *cobra.Command, args []string) error {
	tokens, err := a.readTokens(cmd, args)
	if err != nil {
		return err
	}
	strategy, err := bitonic.ParseStrategy(a.v.GetString("strategy"))
	if err != nil {
		return err
	}
	opts := []bitonic.Option{
		bitonic.WithStrategy(strategy),
		bitonic.WithWorkers(a.v.GetInt("workers")),
		bitonic.WithGrainSize(a.v.GetInt("grain")),
		bitonic.WithLogger(a.logger),
	}
	desc := a.v.GetBool("desc")

	var line string
	switch typ := a.v.GetString("type"); typ {
	case "int":
		line, err = sortTokens(cmd.Context(), tokens, parseInt, bitonic.Ascending[int64](), desc, opts)
	case "float":
		line, err = sortTokens(cmd.Context(), tokens, parseFloat, bitonic.Ascending[float64](), desc, opts)
	case "string":
		line, err = sortTokens(cmd.Context(), tokens, parseString, strings.Compare, desc, opts)
	default:
		return fmt.Errorf("unknown type %q", typ)
	}
	if err != nil {
		return err
	}
	a.logger.Debug("sorted", "n", len(tokens), "strategy", strategy, "desc", desc)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

func (a *app) readTokens(cmd *cobra.Command, args []string) ([]string, error) {
	input := a.v.GetString("input")
	if input == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New("values cannot be given both as arguments and with --input")
	}
	var r io.Reader
	if input == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens, scanner.Err()
}

func sortTokens[T any](
	ctx context.Context,
	tokens []string,
	parse func(string) (T, error),
	cmp bitonic.Comparator[T],
	desc bool,
	opts []bitonic.Option,
) (string, error) {
	values := make([]T, len(tokens))
	for i, token := range tokens {
		value, err := parse(token)
		if err != nil {
			return "", fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = value
	}
	if desc {
		cmp = bitonic.Reverse(cmp)
	}
	if err := bitonic.NewSorter[T](opts...).Sort(ctx, values, cmp); err != nil {
		return "", err
	}
	return formatValues(values), nil
}

func formatValues[T any](values []T) string {
	return strings.Join(lo.Map(values, func(value T, _ int) string {
		return fmt.Sprint(value)
	}), " ")
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseString(s string) (string, error) {
	return s, nil
}
