package adapter

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/utkarshgarg7100/tcp-congestion-analyser/domain"
)

// TableOverviewRepository prints the overview as an aligned text table.
type TableOverviewRepository struct {
	w       io.Writer
	printer *message.Printer
}

func NewTableOverviewRepository(w io.Writer) *TableOverviewRepository {
	return &TableOverviewRepository{w: w, printer: message.NewPrinter(language.English)}
}

func (r *TableOverviewRepository) SaveOverview(o domain.Overview) error {
	names := make([]string, 0, len(o.Variants))
	for _, v := range o.Variants {
		names = append(names, v.Variant)
	}
	scenarios := make([]string, 0, len(o.Scenarios))
	for _, s := range o.Scenarios {
		scenarios = append(scenarios, fmt.Sprint(s))
	}

	r.printer.Fprintf(r.w, "Flow measurements: %d\n", o.Flows)
	fmt.Fprintf(r.w, "TCP variants:      %s\n", strings.Join(names, ", "))
	fmt.Fprintf(r.w, "Scenarios:         %s\n\n", strings.Join(scenarios, ", "))

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Variant\tFlows\tMean Mbps\tStd Mbps\t")
	for _, v := range o.Variants {
		r.printer.Fprintf(tw, "%s\t%d\t%.2f\t%s\t\n", v.Variant, v.Flows, v.MeanThroughputMbps, r.formatStd(v.StdThroughputMbps))
	}
	return tw.Flush()
}

func (r *TableOverviewRepository) formatStd(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return r.printer.Sprintf("%.2f", v)
}
