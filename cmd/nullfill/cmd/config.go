package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/nullfill/internal/config"
)

// configCmd groups the configuration subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	Long: `Commands for the nullfill configuration file.

The file lives at $XDG_CONFIG_HOME/nullfill/config.yaml unless --config
names another path. Every key can be overridden with a NULLFILL_ environment
variable, e.g. NULLFILL_FILL_MODE=text.`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration nullfill would run with: file values, environment
overrides and defaults merged.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configInitCmd writes the default configuration file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write a configuration file with every setting at its default value.

Use --force to overwrite an existing file.

Examples:
  nullfill config init                          # Write to the default location
  nullfill config init --config ./nullfill.yaml # Write to a specific path
  nullfill config init --force                  # Overwrite an existing file`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	addConfigInitFlags(configInitCmd)
}

func addConfigInitFlags(c *cobra.Command) {
	c.Flags().BoolP("force", "f", false, "Overwrite existing configuration")
}

// runConfigShow handles the config show command.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// runConfigInit handles the config init command.
func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := config.Write(config.NewConfig(), path, force); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	return nil
}
