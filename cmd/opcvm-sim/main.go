// Command opcvm-sim projects recurring investments into OPCVM funds, either
// from CLI flags, from a YAML scenario file, or as an HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opcvmsim/fund-simulator/internal/calculation"
	"github.com/opcvmsim/fund-simulator/internal/config"
	"github.com/opcvmsim/fund-simulator/internal/domain"
	"github.com/opcvmsim/fund-simulator/internal/output"
	"github.com/opcvmsim/fund-simulator/internal/registry"
	"github.com/opcvmsim/fund-simulator/pkg/logger"
)

var (
	registryFile string
	formatName   string
	outputPath   string
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "opcvm-sim",
		Short:        "OPCVM investment projection (deterministic and Monte Carlo)",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&registryFile, "registry", "", "YAML fund registry file (default: built-in table)")
	root.PersistentFlags().StringVar(&formatName, "format", "console", "output format: console, json, csv")
	root.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newMonteCarloCmd())
	root.AddCommand(newFundsCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newServeCmd())
	return root
}

// buildEngine assembles the registry (file-backed or built-in) and the
// simulation engine shared by all subcommands.
func buildEngine() (*calculation.SimulationEngine, error) {
	var (
		reg      registry.Registry
		defaults registry.CategoryDefaults
	)
	if registryFile != "" {
		fileReg, fileDefaults, err := registry.LoadFile(registryFile)
		if err != nil {
			return nil, err
		}
		reg, defaults = fileReg, fileDefaults
	} else {
		reg, defaults = registry.Builtin(), registry.BuiltinDefaults()
	}

	engine := calculation.NewSimulationEngine(reg, defaults)
	if verbose {
		log := logger.New(logger.Config{Level: "debug", Pretty: true})
		engine.SetLogger(logger.Printf{L: log})
	}
	return engine, nil
}

// emit formats a result and writes it to --output or stdout.
func emit(format func(output.Formatter) ([]byte, error)) error {
	f := output.GetFormatterByName(formatName)
	if f == nil {
		return fmt.Errorf("unknown output format %q", formatName)
	}
	data, err := format(f)
	if err != nil {
		return err
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func newSimulateCmd() *cobra.Command {
	var (
		fund               string
		initial            float64
		monthly            float64
		years              float64
		fee                float64
		taxRate            float64
		expectedReturn     float64
		contributionGrowth float64
		atStart            bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the deterministic compounding projection for one fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}

			params := domain.SimulationParameters{
				InitialAmount:           initial,
				MonthlyContribution:     monthly,
				Years:                   years,
				AnnualFeeRate:           fee,
				ContributionGrowthRate:  contributionGrowth,
				ContributeAtPeriodStart: atStart,
			}
			if cmd.Flags().Changed("tax") {
				params.TaxRateOverride = &taxRate
			}
			if cmd.Flags().Changed("expected-return") {
				params.ExpectedReturnOverride = &expectedReturn
			}

			result, err := engine.ComputeDeterministicProjection(fund, params)
			if err != nil {
				return err
			}
			return emit(func(f output.Formatter) ([]byte, error) { return f.FormatDeterministic(result) })
		},
	}

	cmd.Flags().StringVar(&fund, "fund", "", "fund name (see 'opcvm-sim funds')")
	cmd.Flags().Float64Var(&initial, "initial", 0, "initial amount in MAD")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly contribution in MAD")
	cmd.Flags().Float64Var(&years, "years", 0, "investment horizon in years")
	cmd.Flags().Float64Var(&fee, "fee", 0.015, "annual management fee as a fraction")
	cmd.Flags().Float64Var(&taxRate, "tax", 0, "tax rate override (default: category rate)")
	cmd.Flags().Float64Var(&expectedReturn, "expected-return", 0, "annual return override (default: derived CAGR)")
	cmd.Flags().Float64Var(&contributionGrowth, "contribution-growth", 0, "annual increase of the monthly contribution")
	cmd.Flags().BoolVar(&atStart, "at-start", false, "add contributions at the start of each month")
	_ = cmd.MarkFlagRequired("fund")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newMonteCarloCmd() *cobra.Command {
	var (
		fund           string
		initial        float64
		monthly        float64
		years          float64
		fee            float64
		paths          int
		vol            float64
		expectedReturn float64
		seed           int64
	)

	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Run the stochastic (GBM) projection for one fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}

			params := domain.SimulationParameters{
				InitialAmount:       initial,
				MonthlyContribution: monthly,
				Years:               years,
				AnnualFeeRate:       fee,
				PathCount:           paths,
			}
			if cmd.Flags().Changed("vol") {
				params.VolatilityOverride = &vol
			}
			if cmd.Flags().Changed("expected-return") {
				params.ExpectedReturnOverride = &expectedReturn
			}
			if cmd.Flags().Changed("seed") {
				params.RandomSeed = &seed
			}

			result, err := engine.ComputeMonteCarloProjection(fund, params)
			if err != nil {
				return err
			}
			return emit(func(f output.Formatter) ([]byte, error) { return f.FormatMonteCarlo(result) })
		},
	}

	cmd.Flags().StringVar(&fund, "fund", "", "fund name (see 'opcvm-sim funds')")
	cmd.Flags().Float64Var(&initial, "initial", 0, "initial amount in MAD")
	cmd.Flags().Float64Var(&monthly, "monthly", 0, "monthly contribution in MAD")
	cmd.Flags().Float64Var(&years, "years", 0, "investment horizon in years")
	cmd.Flags().Float64Var(&fee, "fee", 0.015, "annual management fee as a fraction")
	cmd.Flags().IntVar(&paths, "paths", 5000, "number of Monte Carlo paths")
	cmd.Flags().Float64Var(&vol, "vol", 0, "annual volatility override (default: category volatility)")
	cmd.Flags().Float64Var(&expectedReturn, "expected-return", 0, "annual return override (default: derived CAGR)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible ensembles")
	_ = cmd.MarkFlagRequired("fund")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newFundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "funds",
		Short: "List available funds with their derived annual returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}
			listings, err := engine.ListFunds()
			if err != nil {
				return err
			}
			for _, l := range listings {
				fmt.Printf("%-32s %-12s %6.2f%%/yr\n", l.Name, l.Category, l.AnnualReturn*100)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all scenarios from a YAML scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine()
			if err != nil {
				return err
			}

			parser := config.NewInputParser()
			sf, err := parser.LoadFromFile(configPath)
			if err != nil {
				return err
			}

			for i := range sf.Scenarios {
				scenario := sf.Scenarios[i]
				parser.ApplyDefaults(&scenario)
				fmt.Printf("=== %s ===\n", scenario.Name)

				switch scenario.Model {
				case config.ModelDeterministic:
					result, err := engine.ComputeDeterministicProjection(scenario.Fund, scenario.Parameters)
					if err != nil {
						return fmt.Errorf("scenario %s: %w", scenario.Name, err)
					}
					if err := emit(func(f output.Formatter) ([]byte, error) { return f.FormatDeterministic(result) }); err != nil {
						return err
					}
				case config.ModelMonteCarlo:
					result, err := engine.ComputeMonteCarloProjection(scenario.Fund, scenario.Parameters)
					if err != nil {
						return fmt.Errorf("scenario %s: %w", scenario.Name, err)
					}
					if err := emit(func(f output.Formatter) ([]byte, error) { return f.FormatMonteCarlo(result) }); err != nil {
						return err
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scenario file path")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
