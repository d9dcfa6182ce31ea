package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "leadsheet",
	Short: "Lead capture backend: LLM extraction and transcription into Google Sheets",
	Long: `leadsheet extracts structured sales leads from free text or audio with a
hosted language model and appends them to a Google Sheets worksheet.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "optional YAML config file")
	rootCmd.AddCommand(serveCmd, extractCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
