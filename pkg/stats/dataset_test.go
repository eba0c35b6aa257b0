package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"genestats/pkg/io"
)

func buildDataset(rows []map[string]string) *io.Dataset {
	dataset := &io.Dataset{Meta: io.NewMetadata()}
	for _, row := range rows {
		dataset.Records = append(dataset.Records, io.NewRecord(row))
	}
	return dataset
}

func sampleDataset() *io.Dataset {
	return buildDataset([]map[string]string{
		{
			io.FieldEntrez: "672",
			io.FieldClass:  "0",
			"GO:0000003":   "0",
			"GO:0000019":   "1",
			"ppi_2475":     "0.0",
			"ppi_8776":     "0.5",
		},
		{
			io.FieldEntrez: "675",
			io.FieldClass:  "1",
			"GO:0000003":   "0",
			"GO:0000019":   "1",
			"ppi_2475":     "0.0",
			"ppi_8776":     "0.5",
		},
		{
			io.FieldEntrez: "5888",
			io.FieldClass:  "1",
			"GO:0000003":   "0",
			"GO:0000019":   "1",
			"ppi_2475":     "0.0",
			"ppi_8776":     "0.5",
		},
	})
}

func TestNewDatasetStats(t *testing.T) {
	datasetStats, err := NewDatasetStats(sampleDataset())
	require.NoError(t, err)

	require.Equal(t, 3, datasetStats.NumInstances())
	require.Equal(t, 2, datasetStats.NumPositive())
	require.Equal(t, 1, datasetStats.NumNegative())
	require.Equal(t, 4, datasetStats.NumFeatures())
	require.Equal(t, 2, datasetStats.NumGOFeatures())
	require.Equal(t, 2, datasetStats.NumPPIFeatures())
	require.Equal(t, 0.5, datasetStats.GORatio())
	require.Equal(t, 0.5, datasetStats.PPIRatio())

	average := datasetStats.AvgRowStats()
	require.Equal(t, len(RowStatKeys()), len(average))
	require.Equal(t, 0.5, average["%GO=0"])
	require.Equal(t, 0.5, average["%GO=1"])
	require.Equal(t, 0.5, average["%PPI=0"])
	require.Equal(t, 0.5, average["%PPI=(400;700]"])
	require.Equal(t, 0.0, average["%PPI=(0;150]"])
	require.Equal(t, 0.0, average["%PPI=(150;400]"])
	require.Equal(t, 0.0, average["%PPI=(700;900]"])
	require.Equal(t, 0.0, average["%PPI=(900;1000]"])
	require.Equal(t, 1.0, average["#GO=0"])
	require.Equal(t, 1.0, average["#PPI=(400;700]"])

	average["%GO=0"] = 99
	require.Equal(t, 0.5, datasetStats.AvgRowStats()["%GO=0"])

	require.Equal(t, 3, len(datasetStats.RowStats()))
}

func TestNewDatasetStatsEmpty(t *testing.T) {
	_, err := NewDatasetStats(buildDataset(nil))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, EmptyDataset, validationErr.Kind)
}

func TestNewDatasetStatsEmptyFamily(t *testing.T) {
	_, err := NewDatasetStats(buildDataset([]map[string]string{
		{io.FieldEntrez: "672", io.FieldClass: "0", "GO:0000003": "1"},
	}))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, EmptyFamily, validationErr.Kind)
	require.Equal(t, "PPI", validationErr.Feature)

	_, err = NewDatasetStats(buildDataset([]map[string]string{
		{io.FieldEntrez: "672", io.FieldClass: "0", "ppi_2475": "0.5"},
	}))
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, EmptyFamily, validationErr.Kind)
	require.Equal(t, "GO", validationErr.Feature)
}

func TestNewDatasetStatsSchemaMismatch(t *testing.T) {
	// The second instance declares a third GO feature the first does not have
	dataset := sampleDataset()
	dataset.Records[1] = io.NewRecord(map[string]string{
		io.FieldEntrez: "675",
		io.FieldClass:  "1",
		"GO:0000003":   "0",
		"GO:0000019":   "1",
		"GO:0000122":   "1",
		"ppi_2475":     "0.0",
		"ppi_8776":     "0.5",
	})

	_, err := NewDatasetStats(dataset)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, SchemaMismatch, validationErr.Kind)
	require.Equal(t, "675", validationErr.Instance)
	require.Contains(t, err.Error(), "expected 4 features (2 GO, 2 PPI), got 5 (3 GO, 2 PPI)")
}

func TestNewDatasetStatsPropagatesRowError(t *testing.T) {
	dataset := sampleDataset()
	dataset.Records[1] = io.NewRecord(map[string]string{
		io.FieldEntrez: "675",
		io.FieldClass:  "1",
		"GO:0000003":   "maybe",
		"GO:0000019":   "1",
		"ppi_2475":     "0.0",
		"ppi_8776":     "0.5",
	})

	_, err := NewDatasetStats(dataset)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, InvalidGOValue, validationErr.Kind)
	require.Equal(t, "675", validationErr.Instance)
}

func TestPPIDistribution(t *testing.T) {
	datasetStats, err := NewDatasetStats(sampleDataset())
	require.NoError(t, err)

	n, mean, stddev := datasetStats.PPIDistribution()
	require.Equal(t, 6, n)
	require.InDelta(t, 0.25, mean, 1e-12)
	require.InDelta(t, 0.27386, stddev, 1e-4)
}
