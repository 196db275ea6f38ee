// Package main provides the vibe-explorer command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-explorer/internal/ingest"
	"github.com/inodb/vibe-explorer/internal/store"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibe-explorer",
		Short: "Explore patient variant and phenotype datasets",
		Long: `vibe-explorer loads a flat-file dataset of patients, phenotype-gene
associations, and per-patient variant calls, and answers queries over it:
patient, gene, and phenotype listings, variant search, and phenotype-driven
variant recommendation.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		Example: `  # Interactive session
  vibe-explorer explore --phenotypes fenotipos.csv --patients pacientes.csv --variants ./VCFS

  # Pipeable listings
  vibe-explorer summary patients
  vibe-explorer filter --gene KRAS --chrom 12

  # Export the loaded dataset to DuckDB
  vibe-explorer export --output dataset.duckdb`,
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.vibe-explorer.yaml)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	cmd.PersistentFlags().String("phenotypes", "", "Phenotype metadata CSV (codigo;label;uri;gene)")
	cmd.PersistentFlags().String("patients", "", "Patient metadata CSV (expediente;fenotipo)")
	cmd.PersistentFlags().String("variants", "", "Directory holding per-patient PAC*.csv variant files")

	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data.phenotypes", cmd.PersistentFlags().Lookup("phenotypes"))
	_ = viper.BindPFlag("data.patients", cmd.PersistentFlags().Lookup("patients"))
	_ = viper.BindPFlag("data.variants", cmd.PersistentFlags().Lookup("variants"))

	cmd.AddCommand(newExploreCmd())
	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newRecommendCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".vibe-explorer")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("VIBE_EXPLORER")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// newLogger builds the logger for this invocation. Quiet by default so the
// listings stay pipeable.
func newLogger() *zap.Logger {
	if !viper.GetBool("verbose") {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadStore ingests the configured dataset and loads it into a store.
func loadStore() (*store.Store, error) {
	phenotypesPath := viper.GetString("data.phenotypes")
	patientsPath := viper.GetString("data.patients")
	variantsDir := viper.GetString("data.variants")

	if phenotypesPath == "" || patientsPath == "" || variantsDir == "" {
		return nil, fmt.Errorf("dataset locations not configured: set --phenotypes, --patients, and --variants flags or the data.* config keys")
	}

	logger := newLogger()

	ds, err := ingest.LoadDataset(phenotypesPath, patientsPath, variantsDir, logger)
	if err != nil {
		return nil, err
	}

	s := store.New()
	s.SetLogger(logger)
	if err := s.Load(ds.Patients, ds.Phenotypes, ds.Genes, ds.Variants); err != nil {
		return nil, err
	}
	return s, nil
}
