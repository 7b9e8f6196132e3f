package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agentx-labs/cmdlayer/internal/commands"
	"github.com/spf13/cobra"
)

var (
	showProject string
	showJSON    bool
)

var showCmd = &cobra.Command{
	Use:   "show <name|path>",
	Short: "Print the body of a command",
	Long: `Print the body of a command document with its metadata block removed.

The argument is either a path to a .md file or a command name such as
git:commit, which is resolved against the merged catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showProject, "project", "p", "", "Project directory used to resolve command names")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

// contentResponse is the JSON shape of show --json.
type contentResponse struct {
	Content string `json:"content"`
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target := args[0]

	return withCatalog(ctx, func(catalog *commands.Catalog) error {
		path := target
		if !looksLikePath(target) {
			rec, ok := findRecord(catalog.List(ctx, showProject), strings.TrimPrefix(target, "/"))
			if !ok {
				return fmt.Errorf("command %q not found", target)
			}
			path = rec.Path
		}

		content, err := catalog.Content(path)
		if err != nil {
			return err
		}

		if showJSON {
			data, err := json.MarshalIndent(contentResponse{Content: content}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	})
}

// looksLikePath reports whether arg names a file rather than a command.
func looksLikePath(arg string) bool {
	return strings.ContainsAny(arg, `/\`) || strings.HasSuffix(arg, commands.DocumentSuffix)
}

func findRecord(records []commands.Record, name string) (commands.Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return commands.Record{}, false
}
