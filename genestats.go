package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"genestats/pkg"
	"genestats/pkg/config"

	"github.com/spf13/cobra"
)

func ReportCommand() *cobra.Command {

	var outputFile string
	var configFile string
	var nameTrimPrefix int
	var nameTrimSuffix int
	var outputDelimiter string

	var cmd = &cobra.Command{
		Use:   "report [-o outputFile] dataFile...",
		Short: "Computes descriptive statistics of GO/PPI datasets and writes one report row per dataset",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name-trim-prefix") {
				cfg.NameTrimPrefix = nameTrimPrefix
			}
			if cmd.Flags().Changed("name-trim-suffix") {
				cfg.NameTrimSuffix = nameTrimSuffix
			}
			if cmd.Flags().Changed("output-delimiter") {
				cfg.OutputDelimiter = outputDelimiter
			}
			return pkg.Report(args, outputFile, cfg)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "name of output file (optional, uses stdout if not present)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "name of config file (optional)")
	cmd.Flags().IntVarP(&nameTrimPrefix, "name-trim-prefix", "", -1, "characters to strip from the front of each path to form the dataset name")
	cmd.Flags().IntVarP(&nameTrimSuffix, "name-trim-suffix", "", -1, "characters to strip from the end of each path to form the dataset name")
	cmd.Flags().StringVarP(&outputDelimiter, "output-delimiter", "d", ",", "report delimiter (use \\t for tabs)")

	return cmd
}

func ConfigCommand() *cobra.Command {
	var configFile string

	var cmd = &cobra.Command{
		Use:   "config",
		Short: "Shows or initializes the configuration",
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "name of config file (optional)")

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Prints the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("error marshaling config: %w", err)
			}
			cmd.Print(string(data))
			return nil
		},
	}

	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Writes the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(config.Default(), configFile)
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(initCmd)

	return cmd
}

var logLevel string
var logFormat string

func main() {

	Main := &cobra.Command{Use: "genestats", PersistentPreRun: setupLogging}

	Main.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info error or debug")
	Main.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	Main.AddCommand(ReportCommand())
	Main.AddCommand(ConfigCommand())

	if err := Main.Execute(); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func setupLogging(cmd *cobra.Command, args []string) {

	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		panic("Invalid logging level specified")
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
	default:
		panic("Invalid log format specified")

	}

}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}

	}
	log.Logger = log.Output(writer)

}
