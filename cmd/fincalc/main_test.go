package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fincalc/calculator/internal/domain"
	"github.com/fincalc/calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

var carArgs = []string{
	"car",
	"--annual-income", "1200000",
	"--on-road-price", "1000000",
	"--loan-amount", "800000",
	"--loan-tenure", "5",
	"--interest-rate", "8",
	"--registration-fees", "50000",
	"--fuel-cost", "40000",
	"--insurance-premium", "15000",
	"--life-span", "10",
	"--maintenance-cost", "20000",
}

func TestCarCommand(t *testing.T) {
	stdout, _, err := runCLI(t, carArgs...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "CAR AFFORDABILITY")
	assert.Contains(t, stdout, "Affordable:               Yes")
	assert.NotContains(t, stdout, "FIRE DRAWDOWN PROJECTION")
}

func TestCarCommandCSV(t *testing.T) {
	stdout, _, err := runCLI(t, append(carArgs, "--format", "csv")...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "car_affordability,emi,16221")
	assert.Contains(t, stdout, "car_affordability,annual_cost,197327")
}

func TestCarCommandMissingFields(t *testing.T) {
	_, _, err := runCLI(t, "car", "--annual-income", "1200000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 9)
}

func TestCarCommandZeroInterest(t *testing.T) {
	args := append([]string(nil), carArgs...)
	for i := range args {
		if args[i] == "--interest-rate" {
			args[i+1] = "0"
		}
	}
	_, stderr, err := runCLI(t, args...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDegenerateInput))
	assert.Contains(t, stderr, "car affordability rejected")
}

func TestTaxCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "tax", "--net-income", "1500000", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "income_tax,regime,new")
	assert.Contains(t, stdout, "income_tax,total_tax,109200.00")

	stdout, _, err = runCLI(t, "tax", "--age-category", "60to80", "--new-regime", "no", "--net-income", "800000", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "income_tax,total_tax,72800.00")
}

func TestFireCommandJSON(t *testing.T) {
	stdout, _, err := runCLI(t, "fire",
		"--annual-expenses", "600000",
		"--withdrawal-rate", "4",
		"--fire-number", "15000000",
		"--roi", "7",
		"--starting-age", "45",
		"--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"fire": {`)
	assert.Contains(t, stdout, `"age": 64`)
}

func TestSaveCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "save", "--target-price", "100000", "--target-date", "2099-01", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "savings_goal: Save")
	assert.Contains(t, stdout, "10.00% a year")

	_, _, err = runCLI(t, "save", "--target-price", "100000", "--target-date", "2001-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDegenerateInput))
}

func TestExampleThenRun(t *testing.T) {
	dir := t.TempDir()
	requestFile := filepath.Join(dir, "request.yaml")

	stdout, _, err := runCLI(t, "example", requestFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, requestFile)

	stdout, _, err = runCLI(t, "run", "-f", requestFile, "--format", "console-lite")
	require.NoError(t, err)
	for _, name := range []string{domain.CarAffordabilityCalculator, domain.FireCalculator, domain.IncomeTaxCalculator, domain.SavingsGoalCalculator} {
		assert.Contains(t, stdout, name+":")
	}

	reportDir := filepath.Join(dir, "reports")
	require.NoError(t, os.Mkdir(reportDir, 0o755))
	stdout, _, err = runCLI(t, "run", "-f", requestFile, "--format", "html", "--output", reportDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to")

	entries, err := os.ReadDir(reportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".html"))
}

func TestRunCommandRequiresFile(t *testing.T) {
	_, _, err := runCLI(t, "run")
	assert.Error(t, err)

	_, _, err = runCLI(t, "run", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := runCLI(t, "tax", "--net-income", "100", "--format", "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
}

func TestFormatsCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  console-lite\n")
	assert.Contains(t, stdout, "  yml -> yaml\n")
}

func TestLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "tax", "--net-income", "1500000", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"calculator":"income_tax"`)
	assert.Contains(t, stderr, `"level":"debug"`)

	_, _, err = runCLI(t, "tax", "--net-income", "1", "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	t.Setenv("LOG_LEVEL", "error")
	_, stderr, err = runCLI(t, "tax", "--net-income", "1500000")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
