package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ooiea/DataExtraction/internal/extract"
	"github.com/ooiea/DataExtraction/internal/model"
)

// Version is the release of the dataextraction binary
const Version = "v0.1.0"

var (
	cfgFile string
	verbose bool

	cfg    *model.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dataextraction",
	Short: "Catalog laboratory recordings by the metadata in their paths",
	Long: `dataextraction walks a laboratory file share and infers per-file metadata
(culture, cells, lab, performer, drug and dose, radiation, DIV, ...) from the
folder and file names alone.

It writes one CSV row per recording and can copy a selected subset, together
with an info.csv describing it, into a destination folder.

Nothing is read from inside the recordings: a value the path does not mention
stays empty.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dataextraction %s (vocabulary %s)\n", Version, extract.VocabularyVersion)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.dataextraction/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".dataextraction"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// DATAEXTRACTION_OUTPUT_CSV_PATH overrides output.csv_path
	viper.SetEnvPrefix("DATAEXTRACTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so env variables reach Unmarshal
func setDefaults(d *model.Config) {
	viper.SetDefault("scan.extensions", d.Scan.Extensions)
	viper.SetDefault("scan.follow_symlinks", d.Scan.FollowSymlinks)

	viper.SetDefault("cache.enabled", d.Cache.Enabled)
	viper.SetDefault("cache.dir", d.Cache.Dir)
	viper.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)

	viper.SetDefault("copy.destination", d.Copy.Destination)
	viper.SetDefault("copy.where", d.Copy.Where)
	viper.SetDefault("copy.min_size_gb", d.Copy.MinSizeGB)
	viper.SetDefault("copy.max_size_gb", d.Copy.MaxSizeGB)
	viper.SetDefault("copy.workers", d.Copy.Workers)
	viper.SetDefault("copy.files_per_second", d.Copy.FilesPerSecond)
	viper.SetDefault("copy.burst", d.Copy.Burst)
	viper.SetDefault("copy.overwrite", d.Copy.Overwrite)

	viper.SetDefault("output.csv_path", d.Output.CSVPath)
	viper.SetDefault("output.color", d.Output.Color)
	viper.SetDefault("output.coverage_threshold", d.Output.CoverageThreshold)
	viper.SetDefault("output.verbose", d.Output.Verbose)

	viper.SetDefault("logging.level", d.Logging.Level)
	viper.SetDefault("logging.encoding", d.Logging.Encoding)
}

// loadConfig merges defaults, config file and environment
func loadConfig() (*model.Config, error) {
	c := model.DefaultConfig()
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func newLogger(lc model.LoggingConfig, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if lc.Encoding != "" {
		config.Encoding = lc.Encoding
	}
	if config.Encoding == "console" {
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}
	config.Level = level
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}
