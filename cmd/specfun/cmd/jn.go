package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rollingthunder/specfun/special"
)

var jnIntegral bool

var jnCmd = &cobra.Command{
	Use:   "jn ORDER X",
	Short: "Evaluate the Bessel function J_n(x)",
	Long: `Evaluates the Bessel function of the first kind for an integer order and
real argument and reports which method was used. With --integral the value
is cross-checked against Bessel's integral.`,
	Args: cobra.ExactArgs(2),
	RunE: runJn,
}

func init() {
	jnCmd.Flags().BoolVar(&jnIntegral, "integral", false, "also evaluate Bessel's integral")
	rootCmd.AddCommand(jnCmd)
}

func runJn(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("order: %w", err)
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("argument: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "J_%d(%g) = %.17g\t(%s)\n", n, x, special.Jn(n, x), special.Regime(n, x))
	if jnIntegral {
		w := special.BesselIntegral(n, x, tolerance)
		fmt.Fprintf(out, "integral   = %.17g\t± %.2g\n", w.Value, w.Error)
	}
	return nil
}
