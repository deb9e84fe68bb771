// Package templates provides the embedded Django application skeleton and
// its rendering machinery.
package templates

import "strings"

// Params is the parameter set driving one rendering of the skeleton.
// Field names follow the template variables they substitute. A Params value
// is treated as immutable once handed to a Renderer.
type Params struct {
	// AppName is the Django application name (a Python identifier, e.g.
	// "cookie_lover"). It names the generated package directory.
	AppName string `yaml:"app_name"`

	// RepoName is the repository name (e.g. "cookie_repo"). It heads the
	// README and names the distribution in setup.py.
	RepoName string `yaml:"repo_name"`

	// Models is a comma-separated list of model class names. Empty means no
	// models are generated and model checks are skipped.
	Models string `yaml:"models,omitempty"`

	// OpenSourceLicense selects the license rendered into LICENSE.txt and
	// named in setup.py. Must be a key of the license registry.
	OpenSourceLicense string `yaml:"open_source_license,omitempty"`

	// Author is the setup.py author.
	Author string `yaml:"author,omitempty"`

	// Version is the initial package version.
	Version string `yaml:"version,omitempty"`

	// Description is the one-line project description.
	Description string `yaml:"description,omitempty"`
}

// Parameter defaults.
const (
	DefaultAuthor      = "edX"
	DefaultVersion     = "0.1.0"
	DefaultLicense     = "AGPL 3.0"
	DefaultDescription = "One-line description for README and other doc files."
)

// WithDefaults returns a copy of p with empty optional fields filled in.
func (p Params) WithDefaults() Params {
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.Version == "" {
		p.Version = DefaultVersion
	}
	if p.OpenSourceLicense == "" {
		p.OpenSourceLicense = DefaultLicenseName()
	}
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	return p
}

// ModelNames splits the comma-separated Models field into individual class
// names, trimming surrounding whitespace. Empty input yields nil.
func (p Params) ModelNames() []string {
	if strings.TrimSpace(p.Models) == "" {
		return nil
	}
	parts := strings.Split(p.Models, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// HasModels reports whether the parameter set configures any models.
func (p Params) HasModels() bool {
	return len(p.ModelNames()) > 0
}

// ConfigClass returns the AppConfig class name derived from AppName
// (snake_case to CapWords plus a "Config" suffix).
func (p Params) ConfigClass() string {
	return CapWords(p.AppName) + "Config"
}

// Data is the value handed to text/template during rendering. It carries the
// parameter set plus fields derived from it.
type Data struct {
	AppName     string
	RepoName    string
	Author      string
	Version     string
	License     string
	Description string

	// Models holds the split model class names.
	Models []string

	// ConfigClass is the derived AppConfig class name.
	ConfigClass string

	// RepoUnderline is a run of "=" matching RepoName, for RST headings.
	RepoUnderline string
}

// NewData derives the template data for a parameter set. Defaults are
// applied first.
func NewData(p Params) Data {
	p = p.WithDefaults()
	return Data{
		AppName:       p.AppName,
		RepoName:      p.RepoName,
		Author:        p.Author,
		Version:       p.Version,
		License:       p.OpenSourceLicense,
		Description:   p.Description,
		Models:        p.ModelNames(),
		ConfigClass:   p.ConfigClass(),
		RepoUnderline: strings.Repeat("=", len(p.RepoName)),
	}
}

// File is one rendered output file.
type File struct {
	// Path is the output path relative to the project root, with the .tmpl
	// suffix removed and path placeholders substituted.
	Path string

	// Content is the rendered content.
	Content []byte
}

// GenerateOptions configures project generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// Params is the parameter set to render with.
	Params Params

	// Force allows overwriting files in non-empty directories.
	Force bool
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of files created, relative to TargetDir.
	Files []string

	// TargetDir is the directory where files were created.
	TargetDir string
}
