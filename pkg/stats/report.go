package stats

import (
	"strconv"
	"strings"
)

// ReportFields returns the report column order. The first six columns
// summarize the dataset; the rest are dataset-wide averages of the
// per-instance ratios.
func ReportFields() []string {
	fields := []string{"Dataset", "#Inst", "#Pos", "#Neg", "%GO", "%PPI"}
	for _, value := range goValues {
		fields = append(fields, "avg%GO="+value)
	}
	for _, bucket := range ppiBuckets {
		fields = append(fields, "avg%PPI="+bucket)
	}
	return fields
}

// ReportRow renders the dataset's report line under the given name, one
// value per ReportFields column.
func (d *DatasetStats) ReportRow(name string) []string {
	row := make([]string, 0, 6+len(goValues)+len(ppiBuckets))
	row = append(row,
		name,
		strconv.Itoa(d.numInstances),
		strconv.Itoa(d.numPositive),
		strconv.Itoa(d.numNegative),
		formatFloat(d.GORatio()),
		formatFloat(d.PPIRatio()),
	)
	for _, value := range goValues {
		row = append(row, formatFloat(d.avgStats["%GO="+value]))
	}
	for _, bucket := range ppiBuckets {
		row = append(row, formatFloat(d.avgStats["%PPI="+bucket]))
	}
	return row
}

// formatFloat renders v in the shortest decimal form that round-trips.
// Whole values keep a trailing .0 so ratio columns never look like counts.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		return s + ".0"
	}
	return s
}
