package stats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"genestats/pkg/io"
)

// GOPrefix marks gene-ontology annotation features. Every non-reserved
// attribute without the prefix is a protein interaction score.
const GOPrefix = "GO:"

// PPI bucket labels. Scores are binned into half-open intervals with the
// bounds scaled by 1000; an exact zero is kept apart from (0;150].
const (
	BucketZero = "0"
	Bucket150  = "(0;150]"
	Bucket400  = "(150;400]"
	Bucket700  = "(400;700]"
	Bucket900  = "(700;900]"
	Bucket1000 = "(900;1000]"
)

var goValues = []string{"0", "1"}

var ppiBuckets = []string{BucketZero, Bucket150, Bucket400, Bucket700, Bucket900, Bucket1000}

// RowStatKeys returns the canonical key order for per-instance statistics:
// bucket counts for both feature families followed by within-family ratios.
func RowStatKeys() []string {
	keys := make([]string, 0, 2*(len(goValues)+len(ppiBuckets)))
	for _, value := range goValues {
		keys = append(keys, "#GO="+value)
	}
	for _, bucket := range ppiBuckets {
		keys = append(keys, "#PPI="+bucket)
	}
	for _, value := range goValues {
		keys = append(keys, "%GO="+value)
	}
	for _, bucket := range ppiBuckets {
		keys = append(keys, "%PPI="+bucket)
	}
	return keys
}

// RowStats holds the feature statistics of a single instance, computed once
// at construction. Accessors hand out copies, so a RowStats never changes
// after NewRowStats returns.
type RowStats struct {
	entrez string

	featureNames    []string
	goFeatureNames  []string
	ppiFeatureNames []string

	goValueCounts  map[string]int
	ppiValueCounts map[string]int
	ppiValues      []float64
}

// NewRowStats splits the record's non-reserved attributes into the GO and
// PPI families and bins their values. The first out-of-contract value stops
// the computation.
func NewRowStats(record *io.Record) (*RowStats, error) {
	reserved := io.NewSet(io.FieldEntrez, io.FieldClass)

	rowStats := &RowStats{
		entrez:         record.Entrez(),
		goValueCounts:  map[string]int{},
		ppiValueCounts: map[string]int{},
	}
	for _, value := range goValues {
		rowStats.goValueCounts[value] = 0
	}
	for _, bucket := range ppiBuckets {
		rowStats.ppiValueCounts[bucket] = 0
	}

	names := record.Names()
	sort.Strings(names)
	for _, name := range names {
		if _, ok := reserved[name]; ok {
			continue
		}
		rowStats.featureNames = append(rowStats.featureNames, name)
		value, _ := record.Value(name)

		if strings.HasPrefix(name, GOPrefix) {
			rowStats.goFeatureNames = append(rowStats.goFeatureNames, name)
			if value != "0" && value != "1" {
				return nil, &ValidationError{
					Kind:     InvalidGOValue,
					Feature:  name,
					Instance: rowStats.entrez,
					Detail:   fmt.Sprintf("value %s is not 0 or 1", value),
				}
			}
			rowStats.goValueCounts[value]++
			continue
		}

		rowStats.ppiFeatureNames = append(rowStats.ppiFeatureNames, name)
		score, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &ValidationError{
				Kind:     InvalidPPIValue,
				Feature:  name,
				Instance: rowStats.entrez,
				Detail:   fmt.Sprintf("value %s is not a number", value),
			}
		}
		bucket, ok := ppiBucket(score)
		if !ok {
			return nil, &ValidationError{
				Kind:     InvalidPPIValue,
				Feature:  name,
				Instance: rowStats.entrez,
				Detail:   fmt.Sprintf("value %s is outside [0, 1]", value),
			}
		}
		rowStats.ppiValueCounts[bucket]++
		rowStats.ppiValues = append(rowStats.ppiValues, score)
	}

	return rowStats, nil
}

// ppiBucket bins a score into its interval label. Scores outside [0, 1],
// NaN included, match no arm and report not-ok.
func ppiBucket(score float64) (string, bool) {
	switch {
	case score == 0:
		return BucketZero, true
	case 0 < score && score <= 0.150:
		return Bucket150, true
	case 0.150 < score && score <= 0.400:
		return Bucket400, true
	case 0.400 < score && score <= 0.700:
		return Bucket700, true
	case 0.700 < score && score <= 0.900:
		return Bucket900, true
	case 0.900 < score && score <= 1:
		return Bucket1000, true
	default:
		return "", false
	}
}

// Entrez returns the identifier of the instance the statistics describe.
func (r *RowStats) Entrez() string {
	return r.entrez
}

func (r *RowStats) NumFeatures() int {
	return len(r.featureNames)
}

func (r *RowStats) NumGOFeatures() int {
	return len(r.goFeatureNames)
}

func (r *RowStats) NumPPIFeatures() int {
	return len(r.ppiFeatureNames)
}

// FeatureNames returns the non-reserved attribute names in sorted order.
func (r *RowStats) FeatureNames() []string {
	return append([]string(nil), r.featureNames...)
}

func (r *RowStats) GOFeatureNames() []string {
	return append([]string(nil), r.goFeatureNames...)
}

func (r *RowStats) PPIFeatureNames() []string {
	return append([]string(nil), r.ppiFeatureNames...)
}

// GOValueCounts returns how many GO features hold each of the two values.
func (r *RowStats) GOValueCounts() map[string]int {
	counts := make(map[string]int, len(r.goValueCounts))
	for value, count := range r.goValueCounts {
		counts[value] = count
	}
	return counts
}

// PPIValueCounts returns how many PPI scores fall into each bucket. Every
// bucket is present, empty ones at zero.
func (r *RowStats) PPIValueCounts() map[string]int {
	counts := make(map[string]int, len(r.ppiValueCounts))
	for bucket, count := range r.ppiValueCounts {
		counts[bucket] = count
	}
	return counts
}

// PPIValues returns the parsed interaction scores in feature name order.
func (r *RowStats) PPIValues() []float64 {
	return append([]float64(nil), r.ppiValues...)
}

// Validate cross-checks the derived counts against each other. A failure
// means a computation bug, not bad input.
func (r *RowStats) Validate() error {
	if len(r.goFeatureNames)+len(r.ppiFeatureNames) != len(r.featureNames) {
		return &ValidationError{
			Kind:     CountMismatch,
			Instance: r.entrez,
			Detail: fmt.Sprintf("%d GO and %d PPI features for %d total",
				len(r.goFeatureNames), len(r.ppiFeatureNames), len(r.featureNames)),
		}
	}
	goTotal := 0
	for _, count := range r.goValueCounts {
		goTotal += count
	}
	if goTotal != len(r.goFeatureNames) {
		return &ValidationError{
			Kind:     CountMismatch,
			Instance: r.entrez,
			Detail:   fmt.Sprintf("GO counts sum to %d for %d features", goTotal, len(r.goFeatureNames)),
		}
	}
	ppiTotal := 0
	for _, count := range r.ppiValueCounts {
		ppiTotal += count
	}
	if ppiTotal != len(r.ppiFeatureNames) {
		return &ValidationError{
			Kind:     CountMismatch,
			Instance: r.entrez,
			Detail:   fmt.Sprintf("PPI counts sum to %d for %d features", ppiTotal, len(r.ppiFeatureNames)),
		}
	}
	return nil
}

// Stats returns the instance's statistics keyed by RowStatKeys. Ratios are
// within-family, so they stay comparable across datasets of different
// widths; an empty family reports zero ratios and is rejected at the
// dataset level.
func (r *RowStats) Stats() map[string]float64 {
	numGO := len(r.goFeatureNames)
	numPPI := len(r.ppiFeatureNames)

	stats := make(map[string]float64, 2*(len(goValues)+len(ppiBuckets)))
	for _, value := range goValues {
		count := r.goValueCounts[value]
		stats["#GO="+value] = float64(count)
		stats["%GO="+value] = 0
		if numGO > 0 {
			stats["%GO="+value] = float64(count) / float64(numGO)
		}
	}
	for _, bucket := range ppiBuckets {
		count := r.ppiValueCounts[bucket]
		stats["#PPI="+bucket] = float64(count)
		stats["%PPI="+bucket] = 0
		if numPPI > 0 {
			stats["%PPI="+bucket] = float64(count) / float64(numPPI)
		}
	}
	return stats
}
