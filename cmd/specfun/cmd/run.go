package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rollingthunder/specfun/config"
	"github.com/rollingthunder/specfun/export"
	"github.com/rollingthunder/specfun/grid"
	"github.com/rollingthunder/specfun/logging"
	"github.com/rollingthunder/specfun/numeric"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Evaluate the jobs of a run file over their grids",
	Long: `Loads a YAML or TOML run file and evaluates every job over its domain.
Results are written below the output directory, one directory of .npy files
per job (values, "<name> - ERROR" estimates and the Domain) or one HTML file
per job. The --log-level and --pretty flags override the file's log section.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	run, err := config.Load(args[0])
	if err != nil {
		return err
	}

	level, pp := logLevel, pretty
	if !cmd.Flags().Changed("log-level") && run.Log.Level != "" {
		level = run.Log.Level
	}
	if !cmd.Flags().Changed("pretty") {
		pp = run.Log.Pretty
	}
	logging.SetupLogger(logging.Config{Level: level, Pretty: pp, Out: cmd.ErrOrStderr()})

	return execute(cmd.Context(), run)
}

type jobParams struct {
	Order     int
	Tolerance float64
}

func execute(ctx context.Context, run *config.Run) error {
	if err := os.MkdirAll(run.Output, 0o755); err != nil {
		return err
	}
	for _, job := range run.Jobs {
		log.Info().Str("job", job.Name).Str("function", job.Function).Msg("run: starting job")
		if err := executeJob(ctx, run, job); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
	}
	return nil
}

func executeJob(ctx context.Context, run *config.Run, job config.Job) error {
	f, ok := functions[job.Function]
	if !ok {
		return fmt.Errorf("%w %q", config.ErrUnknownFunction, job.Function)
	}

	base := jobParams{Tolerance: job.Tolerance}
	params := []grid.Named[jobParams]{{Name: job.Function, Params: base}}
	if usesOrder(job.Function) {
		params = grid.Vary("order = %d", base, func(p *jobParams, n int) { p.Order = n }, job.Orders...)
	}

	dir := filepath.Join(run.Output, job.Name)
	dom := job.Domain

	if !dom.TwoDimensional() {
		d, err := grid.NewOneD(dom.Lower, dom.Upper, dom.Resolution)
		if err != nil {
			return err
		}
		r, err := grid.MultiMap1D(ctx, d, func(x float64, p jobParams) numeric.WithError[complex128] {
			return f(complex(x, 0), p.Order, p.Tolerance)
		}, params)
		if err != nil {
			return err
		}

		if run.Format == "html" {
			values, errs := export.SplitOneD(r)
			return export.WriteTablesFile([]export.Table{export.TableOneD(job.Name, d, values, errs)}, dir+".html")
		}
		return export.SaveOneDWithError(dir, d, r)
	}

	d, err := grid.NewTwoD([2]float64(dom.X), [2]float64(dom.Y), dom.Resolution)
	if err != nil {
		return err
	}
	r, err := grid.MultiMap2D(ctx, d, func(x, y float64, p jobParams) numeric.WithError[complex128] {
		return f(complex(x, y), p.Order, p.Tolerance)
	}, params)
	if err != nil {
		return err
	}

	if run.Format == "html" {
		values, errs := export.SplitTwoD(r)
		return export.WriteTablesFile(export.TablesTwoD(job.Name, d, values, errs), dir+".html")
	}
	return export.SaveTwoDWithError(dir, d, r)
}
