package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fincalc/calculator/internal/domain"
)

// CSVDetailedExporter exports the FIRE year table only, one row per year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var fireTableHeader = []string{"Year", "Age", "CorpusAtBeginning", "ReturnOnInvestment", "CorpusAtEnd", "AmountWithdrawn", "RemainingCorpus"}

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if report.Fire == nil {
		if err := w.Write(fireTableHeader); err != nil {
			return nil, err
		}
	} else if err := writeFireTable(w, report.Fire); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeFireTable(w *csv.Writer, p *domain.FireProjection) error {
	if err := w.Write(fireTableHeader); err != nil {
		return err
	}
	for _, yr := range p.Rows {
		row := []string{
			intToString(yr.Year),
			intToString(yr.Age),
			yr.CorpusAtBeginning.StringFixed(2),
			yr.ReturnOnInvestment.StringFixed(2),
			yr.CorpusAtEnd.StringFixed(2),
			yr.AmountWithdrawn.StringFixed(2),
			yr.RemainingCorpus().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
