package stats

import (
	"fmt"

	"github.com/nlpodyssey/spago/pkg/mat"
	"gonum.org/v1/gonum/stat"

	"genestats/pkg/io"
)

// DatasetStats aggregates per-instance statistics over one dataset. All
// fields are computed at construction; the first instance fixes the expected
// feature layout and every other instance must match it.
type DatasetStats struct {
	numInstances int
	numPositive  int
	numNegative  int

	numFeatures    int
	numGOFeatures  int
	numPPIFeatures int

	rowStats []*RowStats
	avgStats map[string]float64
}

// NewDatasetStats computes per-instance statistics for every record and
// their dataset-wide averages. It fails on the first instance that breaks
// the GO/PPI contract or disagrees with the first instance's layout.
func NewDatasetStats(dataset *io.Dataset) (*DatasetStats, error) {
	if dataset.Size() == 0 {
		return nil, &ValidationError{Kind: EmptyDataset, Detail: "no instances"}
	}

	datasetStats := &DatasetStats{
		numInstances: dataset.Size(),
		rowStats:     make([]*RowStats, 0, dataset.Size()),
	}

	for _, record := range dataset.Records {
		if record.Class() == "0" {
			datasetStats.numNegative++
		} else {
			datasetStats.numPositive++
		}

		rowStats, err := NewRowStats(record)
		if err != nil {
			return nil, err
		}
		if err := rowStats.Validate(); err != nil {
			return nil, err
		}
		datasetStats.rowStats = append(datasetStats.rowStats, rowStats)
	}

	reference := datasetStats.rowStats[0]
	datasetStats.numFeatures = reference.NumFeatures()
	datasetStats.numGOFeatures = reference.NumGOFeatures()
	datasetStats.numPPIFeatures = reference.NumPPIFeatures()

	if datasetStats.numGOFeatures == 0 {
		return nil, &ValidationError{Kind: EmptyFamily, Feature: "GO", Detail: "no GO features declared"}
	}
	if datasetStats.numPPIFeatures == 0 {
		return nil, &ValidationError{Kind: EmptyFamily, Feature: "PPI", Detail: "no PPI features declared"}
	}

	for _, rowStats := range datasetStats.rowStats[1:] {
		if rowStats.NumFeatures() != datasetStats.numFeatures ||
			rowStats.NumGOFeatures() != datasetStats.numGOFeatures ||
			rowStats.NumPPIFeatures() != datasetStats.numPPIFeatures {
			return nil, &ValidationError{
				Kind:     SchemaMismatch,
				Instance: rowStats.Entrez(),
				Detail: fmt.Sprintf("expected %d features (%d GO, %d PPI), got %d (%d GO, %d PPI)",
					datasetStats.numFeatures, datasetStats.numGOFeatures, datasetStats.numPPIFeatures,
					rowStats.NumFeatures(), rowStats.NumGOFeatures(), rowStats.NumPPIFeatures()),
			}
		}
	}

	datasetStats.avgStats = averageRowStats(datasetStats.rowStats)

	return datasetStats, nil
}

// averageRowStats sums the per-instance statistics vectors and divides by
// the instance count, key by key.
func averageRowStats(allRowStats []*RowStats) map[string]float64 {
	keys := RowStatKeys()

	sum := mat.NewEmptyVecDense(len(keys))
	for _, rowStats := range allRowStats {
		stats := rowStats.Stats()
		vector := mat.NewEmptyVecDense(len(keys))
		for i, key := range keys {
			vector.Set(i, 0, stats[key])
		}
		sum.AddInPlace(vector)
	}

	sumData := sum.Data()
	average := make(map[string]float64, len(keys))
	for i, key := range keys {
		average[key] = sumData[i] / float64(len(allRowStats))
	}
	return average
}

func (d *DatasetStats) NumInstances() int {
	return d.numInstances
}

func (d *DatasetStats) NumPositive() int {
	return d.numPositive
}

func (d *DatasetStats) NumNegative() int {
	return d.numNegative
}

func (d *DatasetStats) NumFeatures() int {
	return d.numFeatures
}

func (d *DatasetStats) NumGOFeatures() int {
	return d.numGOFeatures
}

func (d *DatasetStats) NumPPIFeatures() int {
	return d.numPPIFeatures
}

// GORatio is the share of features that are GO annotations.
func (d *DatasetStats) GORatio() float64 {
	return float64(d.numGOFeatures) / float64(d.numFeatures)
}

// PPIRatio is the share of features that are interaction scores.
func (d *DatasetStats) PPIRatio() float64 {
	return float64(d.numPPIFeatures) / float64(d.numFeatures)
}

// AvgRowStats returns the per-instance statistics averaged over the whole
// dataset, keyed by RowStatKeys.
func (d *DatasetStats) AvgRowStats() map[string]float64 {
	average := make(map[string]float64, len(d.avgStats))
	for key, value := range d.avgStats {
		average[key] = value
	}
	return average
}

// RowStats returns the per-instance statistics in record order.
func (d *DatasetStats) RowStats() []*RowStats {
	return append([]*RowStats(nil), d.rowStats...)
}

// PPIDistribution returns the count, mean and sample standard deviation of
// every interaction score in the dataset, a quick check for scores that
// were rescaled upstream.
func (d *DatasetStats) PPIDistribution() (n int, mean, stddev float64) {
	var values []float64
	for _, rowStats := range d.rowStats {
		values = append(values, rowStats.ppiValues...)
	}
	switch len(values) {
	case 0:
		return 0, 0, 0
	case 1:
		return 1, values[0], 0
	}
	mean, stddev = stat.MeanStdDev(values, nil)
	return len(values), mean, stddev
}
