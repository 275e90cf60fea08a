package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dbmrq/nullfill/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for nullfill.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  nullfill version          # Show detailed version info
  nullfill version --json   # Machine-readable output`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	addVersionFlags(versionCmd)
}

func addVersionFlags(c *cobra.Command) {
	c.Flags().Bool("json", false, "Print version information as JSON")
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	cmd.Println(info.FullString())
	return nil
}
