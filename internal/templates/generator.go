package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/djbake/cli/internal/output"
)

// Generator handles project generation from the embedded skeleton.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate creates a new project tree from the skeleton.
func (g *Generator) Generate() (*GenerateResult, error) {
	if err := Validate(g.opts.Params); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	params := g.opts.Params.WithDefaults()

	output.Debug("generating project",
		"app", params.AppName,
		"repo", params.RepoName,
		"models", params.Models,
		"license", params.OpenSourceLicense,
		"target", g.opts.TargetDir)

	renderer := NewRenderer(params)
	files, err := renderer.RenderAll()
	if err != nil {
		return nil, err
	}

	createdFiles := make([]string, 0, len(files))
	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.Path))

		if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}

		if !g.opts.Force {
			if _, err := os.Stat(targetPath); err == nil {
				return nil, fmt.Errorf("file %s already exists; use --force to overwrite", targetPath)
			}
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}

		output.Debug("created file", "path", f.Path)
		createdFiles = append(createdFiles, f.Path)
	}

	return &GenerateResult{
		Files:     createdFiles,
		TargetDir: g.opts.TargetDir,
	}, nil
}

// checkTargetDir validates the target directory.
func (g *Generator) checkTargetDir() error {
	info, err := os.Stat(g.opts.TargetDir)
	if os.IsNotExist(err) {
		// Directory doesn't exist, will be created
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", g.opts.TargetDir)
	}

	entries, err := os.ReadDir(g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return fmt.Errorf("directory %s is not empty; use --force to overwrite existing files", g.opts.TargetDir)
	}

	return nil
}
