package pkg

import (
	"encoding/csv"
	"fmt"
	gio "io"
	"os"

	"github.com/rs/zerolog/log"

	"genestats/pkg/config"
	"genestats/pkg/io"
	"genestats/pkg/stats"
)

// Report computes the descriptive statistics of every dataset file and
// writes one report row per dataset, in argument order, to outputFileName
// or to stdout when it is empty. The header goes out with the first dataset
// and rows are flushed as they are produced, so a long run shows progress.
// The first dataset that fails validation stops the run; rows already
// written stay written.
func Report(dataFiles []string, outputFileName string, cfg *config.Config) error {
	delimiter, err := cfg.Delimiter()
	if err != nil {
		return err
	}

	var outputWriter gio.Writer = os.Stdout
	if outputFileName != "" {
		outputFile, err := os.Create(outputFileName)
		if err != nil {
			return fmt.Errorf("error creating output file %s: %w", outputFileName, err)
		}
		defer outputFile.Close()
		outputWriter = outputFile
	}

	csvWriter := csv.NewWriter(outputWriter)
	csvWriter.Comma = delimiter
	headerWritten := false

	for _, dataFile := range dataFiles {
		dataset, warnings, err := io.LoadFile(io.DataParameters{DataFile: dataFile})
		if err != nil {
			return fmt.Errorf("error loading data from %s: %w", dataFile, err)
		}
		logWarnings(dataFile, warnings)

		datasetStats, err := stats.NewDatasetStats(dataset)
		if err != nil {
			return fmt.Errorf("error computing statistics for %s: %w", dataFile, err)
		}

		if !headerWritten {
			if err := csvWriter.Write(stats.ReportFields()); err != nil {
				return fmt.Errorf("error writing report header: %w", err)
			}
			headerWritten = true
		}

		name := cfg.DatasetName(dataFile)
		if err := csvWriter.Write(datasetStats.ReportRow(name)); err != nil {
			return fmt.Errorf("error writing report row for %s: %w", name, err)
		}
		csvWriter.Flush()

		log.Info().Str("Dataset", name).
			Int("Instances", datasetStats.NumInstances()).
			Int("Positive", datasetStats.NumPositive()).
			Int("Negative", datasetStats.NumNegative()).
			Int("Features", datasetStats.NumFeatures()).
			Float64("GORatio", datasetStats.GORatio()).
			Float64("PPIRatio", datasetStats.PPIRatio()).
			Msg("")

		values, mean, stddev := datasetStats.PPIDistribution()
		log.Debug().Str("Dataset", name).
			Int("PPIValues", values).
			Float64("PPIMean", mean).
			Float64("PPIStdDev", stddev).
			Msg("")
	}

	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
