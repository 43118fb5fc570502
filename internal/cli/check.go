package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/badelinebot/badeline/internal/config"
)

// CheckResult holds roster validation results.
type CheckResult struct {
	Valid bool        `json:"valid"`
	Games []CheckGame `json:"games,omitempty"`
}

// CheckGame summarizes one validated roster entry.
type CheckGame struct {
	ID              string `json:"id"`
	VersionVariable string `json:"version_variable"`
	PlatformEntries int    `json:"platform_entries"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <roster-file>",
		Short: "Validate a game roster file",
		Long: `Validate a game roster file without starting the bot.

Checks the CUE syntax, the roster schema, and that at least one game
is configured. Useful before deploying a roster change.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("roster file not found: %s", path))
	}

	games, err := config.LoadGames(path)
	if err != nil {
		if ferr := formatter.Error("E_ROSTER", err.Error()); ferr != nil {
			return ferr
		}
		return NewExitError(ExitFailure, "roster validation failed")
	}

	result := CheckResult{Valid: true}
	for _, g := range games {
		result.Games = append(result.Games, CheckGame{
			ID:              g.ID,
			VersionVariable: g.Version.VariableID,
			PlatformEntries: len(g.Version.InvalidByPlatform),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(summarize(result))
}

func summarize(result CheckResult) string {
	s := "roster ok:"
	for _, g := range result.Games {
		s += " " + g.ID
	}
	return s
}
