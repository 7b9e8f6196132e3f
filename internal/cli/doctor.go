package cli

import (
	"fmt"

	"github.com/agentx-labs/cmdlayer/internal/commands"
	"github.com/agentx-labs/cmdlayer/internal/config"
	"github.com/agentx-labs/cmdlayer/internal/userdata"
	"github.com/spf13/cobra"
)

var doctorProject string

func init() {
	doctorCmd.Flags().StringVarP(&doctorProject, "project", "p", "", "Project directory to include in the check")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the command roots and plugin store",
	Long: `Report the configured plugin store and, for every directory the catalog
would scan, whether it exists and how many command documents it holds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		storePath, err := storeLocation()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Config:  %s\n", config.FilePath())
		fmt.Fprintf(out, "Backend: %s (%s)\n\n", settings.SourcesBackend, storePath)

		ctx := cmd.Context()
		return withCatalog(ctx, func(catalog *commands.Catalog) error {
			userdata.CheckRoots(ctx, out, catalog.Roots(ctx, doctorProject))
			return nil
		})
	},
}

// storeLocation returns the path of the configured plugin store.
func storeLocation() (string, error) {
	if settings.SourcesBackend == config.BackendSQLite {
		return userdata.GetSourcesDB()
	}
	return userdata.GetSourcesFile()
}
