package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fincalc/calculator/internal/calculation"
	"github.com/fincalc/calculator/internal/config"
	"github.com/fincalc/calculator/internal/domain"
	"github.com/fincalc/calculator/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cli holds state shared by every subcommand
type cli struct {
	logLevel  string
	logFormat string
	format    string
	outputDir string
	logger    *logrus.Logger
	parser    *config.InputParser
}

func newRootCmd() *cobra.Command {
	app := &cli{parser: config.NewInputParser()}

	root := &cobra.Command{
		Use:          "fincalc",
		Short:        "Personal finance calculators: car affordability, FIRE drawdown, income tax and savings goals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setupLogger(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $LOG_LEVEL or info")
	root.PersistentFlags().StringVar(&app.logFormat, "log-format", "text", "log format (text or json)")

	root.AddCommand(
		app.newCarCmd(),
		app.newFireCmd(),
		app.newTaxCmd(),
		app.newSaveCmd(),
		app.newRunCmd(),
		app.newExampleCmd(),
		app.newFormatsCmd(),
	)
	return root
}

func (a *cli) setupLogger(w io.Writer) error {
	level := a.logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	switch strings.ToLower(a.logFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", a.logFormat)
	}
	a.logger = logger
	return nil
}

func (a *cli) addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.format, "format", "console", "output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVar(&a.outputDir, "output", "", "write a timestamped report file into this directory instead of stdout")
}

// execute parses, calculates and renders one request
func (a *cli) execute(ctx context.Context, request *domain.CalculationRequest, out io.Writer) error {
	inputs, err := a.parser.ParseRequest(request)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine()
	engine.SetLogger(a.logger.WithField("calculator", strings.Join(request.Calculators(), ",")))
	report, err := engine.Run(ctx, inputs)
	if err != nil {
		return err
	}

	if a.outputDir != "" {
		files, err := output.GenerateReport(report, a.format, a.outputDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(out, "Report written to %s\n", f)
		}
		return nil
	}

	f := output.GetFormatterByName(a.format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s", output.ErrUnsupportedFormat, a.format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func (a *cli) newCarCmd() *cobra.Command {
	form := &domain.CarAffordabilityForm{}
	cmd := &cobra.Command{
		Use:   "car",
		Short: "Check whether a car fits your income over its lifespan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), &domain.CalculationRequest{CarAffordability: form}, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.AnnualIncome, "annual-income", "", "annual gross income")
	f.StringVar(&form.OnRoadPrice, "on-road-price", "", "on-road price of the car")
	f.StringVar(&form.LoanAmount, "loan-amount", "", "loan principal")
	f.StringVar(&form.LoanTenure, "loan-tenure", "", "loan tenure in years")
	f.StringVar(&form.InterestRate, "interest-rate", "", "annual interest rate in percent")
	f.StringVar(&form.RegistrationFees, "registration-fees", "", "one-off registration fees")
	f.StringVar(&form.FuelCost, "fuel-cost", "", "fuel cost per year")
	f.StringVar(&form.InsurancePremium, "insurance-premium", "", "insurance premium per year")
	f.StringVar(&form.LifeSpan, "life-span", "", "years you expect to keep the car")
	f.StringVar(&form.MaintenanceCost, "maintenance-cost", "", "maintenance cost per year")
	a.addOutputFlags(cmd)
	return cmd
}

func (a *cli) newFireCmd() *cobra.Command {
	form := &domain.FireForm{}
	cmd := &cobra.Command{
		Use:   "fire",
		Short: "Project a retirement corpus under yearly withdrawals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), &domain.CalculationRequest{Fire: form}, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.AnnualExpenses, "annual-expenses", "", "annual expenses in retirement")
	f.StringVar(&form.WithdrawalRate, "withdrawal-rate", "", "yearly withdrawal rate in percent")
	f.StringVar(&form.FireNumber, "fire-number", "", "starting corpus")
	f.StringVar(&form.ROI, "roi", "", "yearly return in percent")
	f.StringVar(&form.StartingAge, "starting-age", "", "age at the start of the projection")
	a.addOutputFlags(cmd)
	return cmd
}

func (a *cli) newTaxCmd() *cobra.Command {
	form := &domain.IncomeTaxForm{}
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Compute income tax under the old or new regime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), &domain.CalculationRequest{IncomeTax: form}, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.AgeCategory, "age-category", string(domain.AgeBelow60), "below60, 60to80 or above80")
	f.StringVar(&form.NewRegime, "new-regime", "yes", "opt for the section 115BAC regime (yes or no)")
	f.StringVar(&form.NetIncome, "net-income", "", "net taxable income")
	a.addOutputFlags(cmd)
	return cmd
}

func (a *cli) newSaveCmd() *cobra.Command {
	form := &domain.SavingsGoalForm{}
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Work out the monthly saving needed to reach a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.execute(cmd.Context(), &domain.CalculationRequest{SavingsGoal: form}, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.TargetPrice, "target-price", "", "amount to save")
	f.StringVar(&form.TargetDate, "target-date", "", "goal date (YYYY-MM-DD or YYYY-MM)")
	a.addOutputFlags(cmd)
	return cmd
}

func (a *cli) newRunCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every calculator in a YAML request file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request, err := a.parser.LoadFromFile(file)
			if err != nil {
				return err
			}
			a.logger.Debugf("loaded %s with calculators %v", file, request.Calculators())
			return a.execute(cmd.Context(), request, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "request file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	a.addOutputFlags(cmd)
	return cmd
}

func (a *cli) newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example request file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_request.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			if err := output.SaveRequest(a.parser.CreateExampleRequest(), filename); err != nil {
				return fmt.Errorf("failed to write example request: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example request written to %s\n", filename)
			return nil
		},
	}
}

func (a *cli) newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(out, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
