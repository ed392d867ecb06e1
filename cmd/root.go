package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"consolidex/pkg/consolidate"
	"consolidex/pkg/logging"
	"consolidex/pkg/version"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile         string
	copyToClipboard bool
	verbose         bool

	// appLogger is the logger handed in by main; replaced by a development
	// logger when --verbose is set.
	appLogger *zap.Logger
)

// RootCmd is the base command. Running it without a subcommand performs the
// consolidation with the effective configuration.
var RootCmd = &cobra.Command{
	Use:   "consolidex",
	Short: "Consolidex bundles source folders into per-folder and master text artifacts",
	Long: `Consolidex walks the configured folders under a source root, concatenates
matching files into one consolidated artifact per folder plus a master
artifact, and reports line and token statistics. Designed for preparing
codebase context for LLM input.`,
	Version:       version.Get().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := appLogger
		if verbose {
			devLogger, err := logging.Setup(true, "Consolidex", version.Get().Version)
			if err != nil {
				logger.Warn("Failed to build verbose logger, keeping default", zap.Error(err))
			} else {
				logger = devLogger
			}
		}

		cfg := configFromViper()

		tk, err := consolidate.NewTokenizer(cfg.Tokenizer, cfg.Model, cfg.TokenizerFile, logger)
		if err != nil {
			return fmt.Errorf("initializing tokenizer: %w", err)
		}
		defer tk.Close()

		summary, err := consolidate.Run(cfg, tk, logger)
		if err != nil {
			return err
		}

		consolidate.WriteReport(os.Stdout, summary)

		if copyToClipboard {
			data, err := os.ReadFile(summary.MasterPath)
			if err != nil {
				return fmt.Errorf("reading master artifact for clipboard: %w", err)
			}
			if err := clipboard.WriteAll(string(data)); err != nil {
				logger.Warn("Failed to copy master artifact to clipboard", zap.Error(err))
			} else {
				fmt.Println("Master artifact copied to clipboard.")
			}
		}
		return nil
	},
}

// Execute runs the root command with the given logger.
func Execute(logger *zap.Logger) error {
	appLogger = logger
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := consolidate.DefaultConfig()

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/consolidex/config.toml)")

	RootCmd.Flags().String("src", defaults.SourceRoot, "Source root containing the folders to consolidate")
	viper.BindPFlag("src", RootCmd.Flags().Lookup("src"))
	RootCmd.Flags().String("out", defaults.OutputDir, "Output directory for the artifacts")
	viper.BindPFlag("out", RootCmd.Flags().Lookup("out"))
	RootCmd.Flags().StringSlice("folders", defaults.Folders, "Top-level folders to consolidate, in order")
	viper.BindPFlag("folders", RootCmd.Flags().Lookup("folders"))
	RootCmd.Flags().StringSlice("extensions", defaults.Extensions, "File extensions to include")
	viper.BindPFlag("extensions", RootCmd.Flags().Lookup("extensions"))
	RootCmd.Flags().StringSliceP("exclude", "e", nil, "Gitignore-style patterns to exclude during the walk")
	viper.BindPFlag("exclude", RootCmd.Flags().Lookup("exclude"))

	RootCmd.Flags().String("tokenizer", defaults.Tokenizer, "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", RootCmd.Flags().Lookup("tokenizer"))
	RootCmd.Flags().String("model", "", "Model name for the tokenizer (e.g. gpt-4o, gpt2)")
	viper.BindPFlag("model", RootCmd.Flags().Lookup("model"))
	RootCmd.Flags().String("tokenizer-file", "", "Path to a local tokenizer.json (huggingface only)")
	viper.BindPFlag("tokenizer_file", RootCmd.Flags().Lookup("tokenizer-file"))

	RootCmd.Flags().String("language-file", "", "YAML file overriding extension-to-language tags")
	viper.BindPFlag("language_file", RootCmd.Flags().Lookup("language-file"))

	RootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the master artifact to the clipboard")
	viper.BindPFlag("clipboard", RootCmd.Flags().Lookup("clipboard"))
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("verbose", RootCmd.Flags().Lookup("verbose"))

	viper.SetDefault("src", defaults.SourceRoot)
	viper.SetDefault("out", defaults.OutputDir)
	viper.SetDefault("folders", defaults.Folders)
	viper.SetDefault("extensions", defaults.Extensions)
	viper.SetDefault("tokenizer", defaults.Tokenizer)
}

// initConfig reads in a config file and CONSOLIDEX_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "consolidex"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("CONSOLIDEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}
}

// configFromViper assembles the run configuration from the merged sources
// (defaults < config file < environment < flags).
func configFromViper() *consolidate.Config {
	return &consolidate.Config{
		SourceRoot:    viper.GetString("src"),
		OutputDir:     viper.GetString("out"),
		Folders:       viper.GetStringSlice("folders"),
		Extensions:    viper.GetStringSlice("extensions"),
		Exclude:       viper.GetStringSlice("exclude"),
		Tokenizer:     viper.GetString("tokenizer"),
		Model:         viper.GetString("model"),
		TokenizerFile: viper.GetString("tokenizer_file"),
		LanguageFile:  viper.GetString("language_file"),
	}
}
