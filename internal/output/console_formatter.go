package output

import (
	"bytes"
	"fmt"

	"github.com/fincalc/calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL CALCULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, h := range AnalyzeReport(report) {
		mark := "-"
		if h.Positive {
			mark = "+"
		}
		fmt.Fprintf(&buf, "%s %s: %s\n", mark, h.Calculator, h.Headline)
	}
	return buf.Bytes(), nil
}
