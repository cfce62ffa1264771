package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finplan/projection-engine/internal/api"
	"github.com/finplan/projection-engine/internal/calculation"
	"github.com/finplan/projection-engine/internal/config"
	"github.com/finplan/projection-engine/internal/output"
)

var (
	inputFile  string
	formatName string
	outputFile string
	debug      bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finplan",
		Short: "Retirement and investment projection tools",
		Long: `finplan forecasts capital at a future date from savings, contributions and
economic assumptions, simulates drawing that capital down against an
inflation-linked income need, and solves for the contribution required to
reach a target outcome.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(projectCmd())
	root.AddCommand(drawdownCmd())
	root.AddCommand(solveCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(exampleConfigCmd())
	return root
}

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(calculation.StdLogger{Debug: debug})
	return engine
}

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a full projection from a plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			summary, err := newEngine().RunPlan(plan)
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}

			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", formatName)
			}
			data, err := formatter.Format(summary)
			if err != nil {
				return fmt.Errorf("formatting failed: %w", err)
			}

			if outputFile != "" {
				return os.WriteFile(outputFile, data, 0644)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "plan.yaml", "plan YAML file")
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	return cmd
}

func drawdownCmd() *cobra.Command {
	var (
		capital float64
		curAge  float64
		retAge  float64
		endAge  float64
		ret     float64
		cpi     float64
		income  float64
		onceOff float64
	)
	cmd := &cobra.Command{
		Use:   "drawdown",
		Short: "Simulate drawing capital down against an inflation-linked income need",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := newEngine().SimulateDrawdown(calculation.DrawdownInput{
				StartingCapital:      decimal.NewFromFloat(capital),
				CurrentAge:           decimal.NewFromFloat(curAge),
				RetirementAge:        decimal.NewFromFloat(retAge),
				PlanEndAge:           decimal.NewFromFloat(endAge),
				PostRetirementReturn: decimal.NewFromFloat(ret),
				InflationRate:        decimal.NewFromFloat(cpi),
				MonthlyIncomeToday:   decimal.NewFromFloat(income),
				OnceOffCapitalNeed:   decimal.NewFromFloat(onceOff),
			})

			out := cmd.OutOrStdout()
			if result.Exhausted() {
				point := result.MonthlySeries[*result.ExhaustionMonth-1]
				fmt.Fprintf(out, "Capital exhausted at age %s (month %d)\n", point.Age.StringFixed(1), point.Month)
			} else {
				fmt.Fprintf(out, "Capital survives to age %.1f\n", endAge)
			}
			fmt.Fprintf(out, "Ending balance: %s (%s in today's money)\n",
				output.FormatCurrency(result.EndingBalance), output.FormatCurrency(result.EndingBalanceReal))
			return nil
		},
	}
	cmd.Flags().Float64Var(&capital, "capital", 0, "starting capital at retirement")
	cmd.Flags().Float64Var(&curAge, "current-age", 0, "current age in years")
	cmd.Flags().Float64Var(&retAge, "retirement-age", 65, "retirement age in years")
	cmd.Flags().Float64Var(&endAge, "end-age", 90, "plan end age in years")
	cmd.Flags().Float64Var(&ret, "return", 0.065, "post-retirement annual return")
	cmd.Flags().Float64Var(&cpi, "inflation", 0.05, "annual inflation rate")
	cmd.Flags().Float64Var(&income, "income", 0, "monthly income need in today's currency")
	cmd.Flags().Float64Var(&onceOff, "once-off", 0, "once-off capital need deducted at retirement")
	return cmd
}

func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the extra monthly contribution a plan needs to last to its end age",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			summary, err := newEngine().RunPlan(plan)
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if !summary.Drawdown.Exhausted() {
				fmt.Fprintln(out, "Plan already lasts to its end age; no extra contribution needed")
				return nil
			}
			if !summary.ExtraContributionFeasible {
				fmt.Fprintf(out, "No feasible contribution found; best estimate %s may be unreliable\n",
					output.FormatCurrency(summary.RequiredExtraMonthly))
				return nil
			}
			fmt.Fprintf(out, "Extra monthly contribution needed: %s\n",
				output.FormatCurrency(summary.RequiredExtraMonthly))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputFile, "input", "i", "plan.yaml", "plan YAML file")
	return cmd
}

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; environment wins when both are present.
			_ = godotenv.Load()
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			engine := newEngine()
			server := api.NewServer(engine, calculation.StdLogger{Debug: debug})
			return server.ListenAndServe(":" + port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (defaults to PORT env var, then 8080)")
	return cmd
}

func exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print an example plan YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := config.NewInputParser().CreateExamplePlan()
			data, err := yaml.Marshal(plan)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
