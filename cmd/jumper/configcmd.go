package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Print the config play would use as YAML, preceded by the file it came
from. Redirect the output to start a custom config:

  jumper config > ~/.jumper/configs/jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := config.ResolvePath(flagConfig)
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
