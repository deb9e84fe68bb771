package verify

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/djbake/cli/internal/errors"
	"github.com/djbake/cli/internal/templates"
)

// Check is one independent assertion over a generated tree. Run returns nil
// on pass, an ErrSkipped-wrapped error when the check does not apply to the
// parameter set, and an assertion error otherwise.
type Check struct {
	// Name identifies the check in reports.
	Name string

	// Run performs the assertion against the project for the parameter set
	// that baked it.
	Run func(p Project, params templates.Params) error
}

// Checks returns the full assertion suite. Checks are independent; a
// failure in one never blocks the others.
func Checks() []Check {
	return []Check{
		{Name: "license", Run: CheckLicense},
		{Name: "readme", Run: CheckReadme},
		{Name: "models", Run: CheckModels},
		{Name: "urls", Run: CheckURLs},
		{Name: "travis", Run: CheckTravis},
		{Name: "appconfig", Run: CheckAppConfig},
		{Name: "manifest", Run: CheckManifest},
		{Name: "setup", Run: CheckSetup},
	}
}

// CheckLicense verifies LICENSE.txt carries the canonical marker for the
// configured license and that setup.py names the license verbatim.
func CheckLicense(p Project, params templates.Params) error {
	params = params.WithDefaults()
	license, err := templates.GetLicense(params.OpenSourceLicense)
	if err != nil {
		return err
	}

	if err := p.assertContains("LICENSE.txt", license.Marker); err != nil {
		return err
	}
	return p.assertContains("setup.py", license.Name)
}

// CheckReadme verifies the README heads with the repo name and links the
// hosted documentation.
func CheckReadme(p Project, params templates.Params) error {
	lines, err := p.ReadLines("README.rst")
	if err != nil {
		return err
	}
	if len(lines) == 0 || lines[0] != params.RepoName {
		return errors.NewAssertionError(
			fmt.Sprintf("first line of README.rst must be %q", params.RepoName), "README.rst")
	}

	docLine := fmt.Sprintf("The full documentation is at https://%s.readthedocs.org.", params.RepoName)
	for _, line := range lines {
		if line == docLine {
			return nil
		}
	}
	return errors.NewAssertionError(
		fmt.Sprintf("README.rst missing documentation line %q", docLine), "README.rst")
}

// CheckModels verifies one line-anchored class declaration per configured
// model. Skipped when the parameter set configures no models.
func CheckModels(p Project, params templates.Params) error {
	if !params.HasModels() {
		return errors.Wrap(errors.ErrSkipped, "no models to check")
	}

	rel := params.AppName + "/models.py"
	for _, model := range params.ModelNames() {
		pattern := fmt.Sprintf(`^class %s\(TimeStampedModel\):$`, regexp.QuoteMeta(model))
		if err := p.assertMatchesLine(rel, pattern); err != nil {
			return err
		}
	}
	return nil
}

// CheckURLs verifies the base TemplateView route is routed.
func CheckURLs(p Project, params templates.Params) error {
	basicURL := fmt.Sprintf(`url(r'', TemplateView.as_view(template_name="%s/base.html"))`, params.AppName)
	return p.assertContains(params.AppName+"/urls.py", basicURL)
}

// CheckTravis verifies the CI config installs the travis requirements and
// parses as YAML.
func CheckTravis(p Project, params templates.Params) error {
	if err := p.assertContains(".travis.yml", "pip install -r requirements/travis.txt"); err != nil {
		return err
	}

	content, err := p.ReadFile(".travis.yml")
	if err != nil {
		return err
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return errors.NewAssertionError(
			fmt.Sprintf(".travis.yml is not valid YAML: %v", err), ".travis.yml")
	}
	return nil
}

// CheckAppConfig verifies the generated Django AppConfig wiring.
func CheckAppConfig(p Project, params templates.Params) error {
	configClass := params.ConfigClass()

	initPattern := fmt.Sprintf(`^default_app_config = '%s\.apps\.%s'  #`,
		regexp.QuoteMeta(params.AppName), regexp.QuoteMeta(configClass))
	if err := p.assertMatchesLine(params.AppName+"/__init__.py", initPattern); err != nil {
		return err
	}

	appsPattern := fmt.Sprintf(`^class %s\(AppConfig\):$`, regexp.QuoteMeta(configClass))
	return p.assertMatchesLine(params.AppName+"/apps.py", appsPattern)
}

// CheckManifest verifies package data is included for the app.
func CheckManifest(p Project, params templates.Params) error {
	marker := fmt.Sprintf("recursive-include %s *.html", params.AppName)
	return p.assertContains("MANIFEST.in", marker)
}

// CheckSetup verifies the version getter and author metadata in setup.py.
func CheckSetup(p Project, params templates.Params) error {
	params = params.WithDefaults()

	versionLine := fmt.Sprintf("VERSION = get_version('%s', '__init__.py')", params.AppName)
	if err := p.assertContains("setup.py", versionLine); err != nil {
		return err
	}
	authorLine := fmt.Sprintf("    author='%s',", params.Author)
	return p.assertContains("setup.py", authorLine)
}
