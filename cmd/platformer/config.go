package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var (
	flagFormat        string
	flagDefaults      bool
	flagCfgDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a session would use, after the search order
(--config, ~/.platformer/configs/platformer.yaml, ./configs/platformer.yaml,
built-in defaults) and the difficulty preset have been applied.

Redirect the output to a file to start a custom config.

Examples:
  platformer config
  platformer config --defaults > ~/.platformer/configs/platformer.yaml
  platformer config --format toml > platformer.toml
  platformer config --config ./my.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file instead")
	configCmd.Flags().StringVar(&flagCfgDifficulty, "difficulty", "", "Difficulty preset to apply: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagCfgDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	switch flagFormat {
	case "yaml", "yml":
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	case "toml":
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want yaml or toml)\n", flagFormat)
		os.Exit(1)
	}
}
