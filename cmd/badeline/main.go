// Command badeline runs the leaderboard submission moderation bot.
package main

import (
	"fmt"
	"os"

	"github.com/badelinebot/badeline/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
