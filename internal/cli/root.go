package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agentx-labs/cmdlayer/internal/branding"
	"github.com/agentx-labs/cmdlayer/internal/config"
	"github.com/agentx-labs/cmdlayer/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	// settings and logger are resolved once per invocation in PersistentPreRunE.
	settings config.Settings
	logger   *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` merges slash-command definitions from the project, the user's home
directory, and registered plugin directories into a single catalog.

Commands live in <project>/.claude/commands, ~/.claude/commands, and
<plugin>/commands. Nested folders become colon-separated namespaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		s, err := config.Resolve()
		if err != nil && !isConfigCommand(cmd) {
			return err
		}
		settings = s
		logger = logging.New(cmd.ErrOrStderr(), s.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// isConfigCommand reports whether cmd is config or one of its subcommands,
// which must run even when the stored settings are invalid.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}
