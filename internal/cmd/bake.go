// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/djbake/cli/internal/output"
	"github.com/djbake/cli/internal/templates"
)

var (
	bakeRepoFlag    string
	bakeModelsFlag  string
	bakeLicenseFlag string
	bakeDirFlag     string
	bakeForceFlag   bool
)

// NewBakeCmd creates the bake command.
func NewBakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bake <app-name>",
		Short: "Generate a Django app skeleton",
		Long: `Generate a Django reusable-app skeleton from the embedded template.

The app name must be a valid Python identifier. Model names are CapWords
Python class names, comma-separated.

Examples:
  # Generate an app with defaults
  djbake bake cookie_lover

  # Generate with models and a repo name
  djbake bake cookie_lover --repo cookie_repo --models ChocolateChip,Zimsterne

  # Generate under the Apache license in a specific directory
  djbake bake cookie_lover --license "Apache Software License 2.0" --dir ./out`,
		Args: cobra.ExactArgs(1),
		RunE: runBake,
	}

	cmd.Flags().StringVarP(&bakeRepoFlag, "repo", "r", "",
		"Repository name (defaults to the app name)")
	cmd.Flags().StringVarP(&bakeModelsFlag, "models", "m", "",
		"Comma-separated model class names")
	cmd.Flags().StringVarP(&bakeLicenseFlag, "license", "l", "",
		fmt.Sprintf("Open source license (%s)", strings.Join(templates.LicenseNames(), ", ")))
	cmd.Flags().StringVarP(&bakeDirFlag, "dir", "d", "",
		"Directory to generate the project in (defaults to the repo name)")
	cmd.Flags().BoolVar(&bakeForceFlag, "force", false,
		"Generate into a non-empty directory, overwriting files")

	return cmd
}

func runBake(cmd *cobra.Command, args []string) error {
	appName := args[0]

	repoName := bakeRepoFlag
	if repoName == "" {
		repoName = appName
	}

	params := templates.Params{
		AppName:           appName,
		RepoName:          repoName,
		Models:            bakeModelsFlag,
		OpenSourceLicense: bakeLicenseFlag,
	}.WithDefaults()

	targetDir := bakeDirFlag
	if targetDir == "" {
		targetDir = repoName
	}

	if bakeForceFlag {
		output.Warn("existing files in the target directory will be overwritten", "dir", targetDir)
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", targetDir, err)
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("getting absolute path: %w", err)
	}

	gen := templates.NewGenerator(templates.GenerateOptions{
		TargetDir: targetDir,
		Params:    params,
		Force:     bakeForceFlag,
	})

	result, err := gen.Generate()
	if err != nil {
		return err
	}

	output.Println(fmt.Sprintf("Baked app '%s' in %s\n", appName, absDir))

	entries := make([]output.FileEntry, 0, len(result.Files)+1)
	entries = append(entries, output.FileEntry{
		Path:        targetDir + "/",
		Description: "Project directory",
	})
	for _, f := range result.Files {
		entries = append(entries, output.FileEntry{
			Path:        "  " + f,
			Description: fileDescription(f, params),
		})
	}

	output.Print(output.RenderFileTree(entries, 34))

	return nil
}

// fileDescription returns a short description for a generated file.
func fileDescription(path string, params templates.Params) string {
	descriptions := map[string]string{
		"README.rst":               "Repo overview",
		"setup.py":                 "Package metadata and version",
		"LICENSE.txt":              "License text",
		"MANIFEST.in":              "Packaging manifest",
		".travis.yml":              "CI configuration",
		"Makefile":                 "Developer targets",
		"requirements/base.txt":    "Runtime requirements",
		"requirements/travis.txt":  "CI requirements",
		"docs/index.rst":           "Documentation index",
		"docs/getting_started.rst": "Getting started guide",
	}

	if desc, ok := descriptions[path]; ok {
		return desc
	}

	appPrefix := params.AppName + "/"
	if strings.HasPrefix(path, appPrefix) {
		switch strings.TrimPrefix(path, appPrefix) {
		case "__init__.py":
			return "App package and version"
		case "apps.py":
			return "Django AppConfig"
		case "models.py":
			return "Model definitions"
		case "urls.py":
			return "URL routing"
		}
		if strings.HasSuffix(path, ".html") {
			return "Template"
		}
	}

	return ""
}
