package adapter

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

const (
	SummaryFileName  = "summary_statistics.csv"
	FairnessFileName = "fairness_analysis.csv"
)

var (
	summaryHeader  = []string{"Variant", "Scenario", "Throughput_Mbps_sum", "Throughput_Mbps_mean", "Delay_s_mean", "LostPackets_sum"}
	fairnessHeader = []string{"Scenario", "Variant", "Fairness"}
)

type CsvSummaryRepository struct {
	filename string
}

func NewCsvSummaryRepository(filename string) *CsvSummaryRepository {
	return &CsvSummaryRepository{filename: filename}
}

func (r *CsvSummaryRepository) SaveSummary(rows []domain.AggregateRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Variant,
			strconv.Itoa(row.Scenario),
			formatRounded(row.ThroughputSum),
			formatRounded(row.ThroughputMean),
			formatRounded(row.DelayMean),
			strconv.FormatInt(row.LostPackets, 10),
		})
	}
	return writeCsv(r.filename, summaryHeader, records)
}

type CsvFairnessRepository struct {
	filename string
}

func NewCsvFairnessRepository(filename string) *CsvFairnessRepository {
	return &CsvFairnessRepository{filename: filename}
}

func (r *CsvFairnessRepository) SaveFairness(rows []domain.FairnessRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.Itoa(row.Scenario),
			row.Variant,
			strconv.FormatFloat(row.Fairness, 'f', -1, 64),
		})
	}
	return writeCsv(r.filename, fairnessHeader, records)
}

func writeCsv(filename string, header []string, records [][]string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return &domain.IOError{Op: "create", Path: filename, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &domain.IOError{Op: "close", Path: filename, Err: cerr})
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return &domain.IOError{Op: "write", Path: filename, Err: err}
	}
	if err := w.WriteAll(records); err != nil {
		return &domain.IOError{Op: "write", Path: filename, Err: err}
	}
	return nil
}

// formatRounded keeps three decimals and drops trailing zeros.
func formatRounded(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
