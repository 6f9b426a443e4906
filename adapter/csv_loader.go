package adapter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/c2h5oh/datasize"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

const (
	ColVariant    = "Variant"
	ColScenario   = "Scenario"
	ColThroughput = "Throughput_Mbps"
	ColDelay      = "Delay_s"
	ColLost       = "LostPackets"
)

var requiredColumns = []string{ColVariant, ColScenario, ColThroughput, ColDelay, ColLost}

type CsvFlowRepository struct {
	filename string
	maxSize  datasize.ByteSize
}

// NewCsvFlowRepository reads simulator results from filename. A zero
// maxSize disables the size check.
func NewCsvFlowRepository(filename string, maxSize datasize.ByteSize) *CsvFlowRepository {
	return &CsvFlowRepository{filename: filename, maxSize: maxSize}
}

func (r *CsvFlowRepository) LoadFlows() ([]domain.FlowRecord, error) {
	file, err := os.Open(r.filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.MissingInputError{Path: r.filename, Err: err}
		}
		return nil, err
	}
	defer file.Close()

	if r.maxSize > 0 {
		info, err := file.Stat()
		if err != nil {
			return nil, err
		}
		if size := datasize.ByteSize(info.Size()); size > r.maxSize {
			return nil, r.formatErr(0, "", fmt.Errorf("file size %s exceeds limit %s", size.HR(), r.maxSize.HR()))
		}
	}

	// ns-3 output is plain UTF-8, spreadsheet round-trips add a BOM.
	reader := csv.NewReader(transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, r.formatErr(0, "", errors.New("empty file, header row expected"))
		}
		return nil, r.csvErr(err)
	}
	index, err := r.columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []domain.FlowRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, r.csvErr(err)
		}
		line, _ := reader.FieldPos(0)

		rec, err := r.parseRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *CsvFlowRepository) columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, r.formatErr(1, "", fmt.Errorf("missing required columns: %s", strings.Join(missing, ", ")))
	}
	return index, nil
}

func (r *CsvFlowRepository) parseRow(row []string, index map[string]int, line int) (domain.FlowRecord, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}

	variant := field(ColVariant)
	if variant == "" {
		return domain.FlowRecord{}, r.formatErr(line, ColVariant, errors.New("empty value"))
	}

	scenario, err := strconv.Atoi(field(ColScenario))
	if err != nil {
		return domain.FlowRecord{}, r.formatErr(line, ColScenario, err)
	}
	if scenario <= 0 {
		return domain.FlowRecord{}, r.formatErr(line, ColScenario, fmt.Errorf("scenario id %d is not positive", scenario))
	}

	throughput, err := parseMetric(field(ColThroughput), false)
	if err != nil {
		return domain.FlowRecord{}, r.formatErr(line, ColThroughput, err)
	}

	// A flow that received nothing has an undefined mean delay.
	delay, err := parseMetric(field(ColDelay), true)
	if err != nil {
		return domain.FlowRecord{}, r.formatErr(line, ColDelay, err)
	}

	lost, err := strconv.ParseInt(field(ColLost), 10, 64)
	if err != nil {
		return domain.FlowRecord{}, r.formatErr(line, ColLost, err)
	}
	if lost < 0 {
		return domain.FlowRecord{}, r.formatErr(line, ColLost, fmt.Errorf("negative count %d", lost))
	}

	return domain.FlowRecord{
		Variant:        variant,
		Scenario:       scenario,
		ThroughputMbps: throughput,
		DelayS:         delay,
		LostPackets:    lost,
	}, nil
}

func parseMetric(s string, allowNaN bool) (float64, error) {
	switch strings.ToLower(s) {
	case "nan", "-nan", "+nan":
		if allowNaN {
			return math.NaN(), nil
		}
		return 0, errors.New("value is not a number")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %v", v)
	}
	return v, nil
}

func (r *CsvFlowRepository) csvErr(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return r.formatErr(parseErr.Line, "", parseErr.Err)
	}
	return r.formatErr(0, "", err)
}

func (r *CsvFlowRepository) formatErr(line int, column string, err error) error {
	return &domain.DataFormatError{Path: r.filename, Line: line, Column: column, Err: err}
}
