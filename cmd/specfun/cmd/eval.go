package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	order     int
	tolerance float64
)

var evalCmd = &cobra.Command{
	Use:   "eval FUNC RE [IM]",
	Short: "Evaluate a special function at a complex point",
	Long: `Evaluates one of jn, besselintegral, si, ci, cin, f, g, ein, gamma or k at
RE + i IM. The Bessel functions take the real part only.`,
	Args:      cobra.RangeArgs(2, 3),
	ValidArgs: functionNames(),
	RunE:      runEval,
}

func init() {
	evalCmd.Flags().IntVarP(&order, "order", "n", 0, "order of jn and besselintegral")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", 1e-10, "target absolute error of integrals")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	re, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("real part: %w", err)
	}
	var im float64
	if len(args) == 3 {
		if im, err = strconv.ParseFloat(args[2], 64); err != nil {
			return fmt.Errorf("imaginary part: %w", err)
		}
	}
	z := complex(re, im)

	f, err := lookup(args[0], z)
	if err != nil {
		return err
	}

	w := f(z, order, tolerance)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s(%v) = %.17g", args[0], z, w.Value)
	if w.Error > 0 {
		fmt.Fprintf(out, "\t± %.2g", w.Error)
	}
	fmt.Fprintln(out)
	return nil
}
