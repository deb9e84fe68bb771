// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/djbake/cli/internal/output"
	"github.com/djbake/cli/internal/templates"
)

var templatesAppFlag string

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the files the skeleton generates",
		Long: `List the output paths of the embedded skeleton.

Paths containing the app name placeholder are shown substituted for the
given app name.`,
		RunE: runTemplates,
	}

	cmd.Flags().StringVar(&templatesAppFlag, "app", "cookie_lover",
		"App name to substitute into placeholder paths")

	return cmd
}

func runTemplates(cmd *cobra.Command, args []string) error {
	params := templates.Params{
		AppName:  templatesAppFlag,
		RepoName: templatesAppFlag,
	}.WithDefaults()

	files, err := templates.ListFiles(params)
	if err != nil {
		return err
	}

	entries := make([]output.FileEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, output.FileEntry{
			Path:        f,
			Description: fileDescription(f, params),
		})
	}

	output.Print(output.RenderFileTree(entries, 34))
	return nil
}
