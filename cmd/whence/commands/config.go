package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/whence/config"
)

// ConfigCmd manages the whence CLI configuration file
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage whence configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file to ~/.whence/whence.toml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := config.Save(cfg, path); err != nil {
			return err
		}
		pterm.Success.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Output")
		pterm.Info.Printf("json: %v\n", cfg.Output.JSON)
		pterm.Info.Printf("layout: %s\n", cfg.Output.Layout)
		pterm.Info.Printf("verbose: %v\n", cfg.Output.Verbose)

		pterm.DefaultSection.Println("Resolve")
		if cfg.Resolve.Reference != "" {
			pterm.Info.Printf("reference: %s\n", cfg.Resolve.Reference)
		} else {
			pterm.Info.Println("reference: (current time)")
		}
		if cfg.Resolve.TimezoneOffsetMinutes != nil {
			pterm.Info.Printf("timezone offset: %d minutes\n", *cfg.Resolve.TimezoneOffsetMinutes)
		} else {
			pterm.Info.Println("timezone offset: (unset)")
		}
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}
