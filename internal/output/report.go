package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fincalc/calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the report in the named format into dir and returns
// the written file names. "all" writes the detailed console, csv and json
// formats.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to write")
	}

	names := []string{format}
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		names = []string{"console", "csv", "json"}
	}

	var written []string
	for _, name := range names {
		f := GetFormatterByName(name)
		if f == nil {
			// enrich error with available formatters and aliases
			return written, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
		}
		filename, err := WriteFormatted(f, report, dir, FileExtension(name))
		if err != nil {
			return written, err
		}
		written = append(written, filename)
	}
	return written, nil
}

// SaveRequest writes a calculation request as YAML
func SaveRequest(request *domain.CalculationRequest, filename string) error {
	b, err := yaml.Marshal(request)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
