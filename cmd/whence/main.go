package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/whence/cmd/whence/commands"
	"github.com/teranos/whence/config"
	"github.com/teranos/whence/logger"
)

var rootCmd = &cobra.Command{
	Use:   "whence",
	Short: "whence - natural-language temporal expression resolution",
	Long: `whence resolves recognized temporal expressions ("tomorrow",
"next friday", a "3-5 march" span) into concrete calendar dates,
anchored to a reference instant.

The resolver consumes what a recognizer layer extracts: a lexical
category plus its numeric literals. It never tokenizes text and never
reads the system clock on its own; the CLI supplies the reference.

Examples:
  whence resolve casual --casual tomorrow
  whence resolve weekday --weekday 5 --modifier next
  whence resolve monthday --day 3 --end-day 5 --month 3
  whence resolve daypart --part morning
  whence config init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		level := zapcore.InfoLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || cfg.Output.Verbose {
			level = zapcore.DebugLevel
		}
		if err := logger.InitializeWithLevel(cfg.Output.LogJSON, level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug-level resolution traces")

	rootCmd.AddCommand(commands.ResolveCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
