package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rollingthunder/specfun/logging"
)

var (
	logLevel string
	pretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "specfun",
	Short: "Special functions and adaptive quadrature",
	Long: `specfun evaluates special functions (Bessel J_n, trigonometric and
exponential integrals, elliptic K, gamma) and definite integrals to a
requested tolerance, one value at a time or over whole grids described by a
run file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(logging.Config{Level: logLevel, Pretty: pretty, Out: cmd.ErrOrStderr()})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human readable console logs instead of JSON")
}
