// Command agentscape runs and validates agent-based modeling scenarios.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/agentscape"
	"github.com/hupe1980/agentscape/engine"
	"github.com/hupe1980/agentscape/internal/util"
	"github.com/hupe1980/agentscape/logging"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

const reportSummaryTemplate = `replicate {{.Replicate}} (seed {{.Seed}}): {{.Report.Outcome}} after {{.Report.Steps}} steps in {{round .Report.Duration}}, {{.Report.Live}}/{{.Report.Population}} live
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "agentscape",
		Short:         "Run agent-based modeling scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRunCmd(), newValidateCmd(), newVersionCmd())

	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		steps      int
		seed       int64
		replicates int
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario and print per-replicate summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel, logFormat)
			if err != nil {
				return err
			}

			sc, err := agentscape.NewScenarioLoader().Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				sc.Steps = steps
			}
			if cmd.Flags().Changed("seed") {
				sc.Seed = seed
			}
			if replicates < 1 {
				return fmt.Errorf("replicates must be at least 1, got %d", replicates)
			}

			m := agentscape.New(func(o *agentscape.Options) {
				o.Logger = logger
			})

			// Each replicate runs an independent world with an offset seed, so
			// they may run in parallel without touching the core's
			// single-threaded contract.
			reports := make([]*engine.Report, replicates)
			g, ctx := errgroup.WithContext(cmd.Context())
			for i := 0; i < replicates; i++ {
				g.Go(func() error {
					replicate := *sc
					replicate.Seed = sc.Seed + int64(i)
					report, err := m.RunScenario(ctx, &replicate)
					if err != nil {
						return fmt.Errorf("replicate %d: %w", i, err)
					}
					reports[i] = report
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, report := range reports {
				out, err := util.RenderTemplate(reportSummaryTemplate, map[string]any{
					"Replicate": i,
					"Seed":      sc.Seed + int64(i),
					"Report":    report,
				})
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "override the scenario's step cap")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the scenario's random seed")
	cmd.Flags().IntVar(&replicates, "replicates", 1, "number of replicate runs (seed offset per replicate)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Validate a scenario file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := agentscape.NewScenarioLoader().Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scenario %q is valid\n", sc.Name)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func newLogger(level, format string) (logging.Logger, error) {
	var l logging.LogLevel
	switch level {
	case "debug":
		l = logging.LogLevelDebug
	case "info":
		l = logging.LogLevelInfo
	case "warn":
		l = logging.LogLevelWarn
	case "error":
		l = logging.LogLevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	cfg := logging.DefaultLoggerConfig()
	cfg.Level = l
	cfg.Format = format
	cfg.Output = os.Stderr
	cfg.AddSource = false
	cfg.Component = "cli"

	return logging.NewLogger(cfg), nil
}
