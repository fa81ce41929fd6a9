package cmd

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rollingthunder/specfun/problems"
	"github.com/rollingthunder/specfun/quad"
)

var method string

var integrateCmd = &cobra.Command{
	Use:   "integrate PROBLEM",
	Short: "Integrate a catalogue problem with a known value",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntegrate,
}

func init() {
	integrateCmd.Flags().StringVarP(&method, "method", "m", quad.DoubleExponential.String(), "quadrature method (de, trapezium)")
	integrateCmd.ValidArgs = problemNames()
	rootCmd.AddCommand(integrateCmd)
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	p, ok := problems.Catalogue()[args[0]]
	if !ok {
		return fmt.Errorf("unknown problem %q, expected one of %v", args[0], problemNames())
	}
	m, err := quad.ParseMethod(method)
	if err != nil {
		return err
	}
	integrator, err := quad.New(m)
	if err != nil {
		return err
	}

	a, b := p.Limits()
	o := integrator.Integrate(p.Integrand, a, b, tolerance)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s with %s\n", p.Description(), integrator.Info().Name)
	fmt.Fprintf(out, "  integral:    %.17g\n", o.Integral)
	fmt.Fprintf(out, "  estimate:    %.3g\n", o.ErrorEstimate)
	fmt.Fprintf(out, "  actual:      %.3g\n", cmplx.Abs(o.Integral-p.Value()))
	fmt.Fprintf(out, "  evaluations: %d\n", o.Evaluations)
	if !o.Converged(tolerance) {
		fmt.Fprintln(out, "  target not reached")
	}
	return nil
}

func problemNames() []string {
	catalogue := problems.Catalogue()
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
