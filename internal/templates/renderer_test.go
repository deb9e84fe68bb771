package templates

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseParams = Params{
	AppName:  "cookie_lover",
	RepoName: "cookie_repo",
}

func renderedFiles(t *testing.T, p Params) map[string]string {
	t.Helper()
	files, err := NewRenderer(p).RenderAll()
	require.NoError(t, err)

	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Path] = string(f.Content)
	}
	return out
}

func TestRenderAll_Paths(t *testing.T) {
	files := renderedFiles(t, baseParams)

	wantPaths := []string{
		"README.rst",
		"setup.py",
		"LICENSE.txt",
		"MANIFEST.in",
		".travis.yml",
		"Makefile",
		"requirements/base.txt",
		"requirements/travis.txt",
		"docs/index.rst",
		"docs/getting_started.rst",
		"cookie_lover/__init__.py",
		"cookie_lover/apps.py",
		"cookie_lover/models.py",
		"cookie_lover/urls.py",
		"cookie_lover/templates/cookie_lover/base.html",
	}

	for _, p := range wantPaths {
		assert.Contains(t, files, p, "missing rendered file: %s", p)
	}
	assert.Len(t, files, len(wantPaths))
}

func TestRenderAll_PlaceholderSubstitution(t *testing.T) {
	files := renderedFiles(t, baseParams)

	for p := range files {
		assert.NotContains(t, p, "__app_name__", "unsubstituted placeholder in %s", p)
		assert.False(t, strings.HasSuffix(p, ".tmpl"), "unstripped suffix in %s", p)
	}
}

func TestRenderAll_Readme(t *testing.T) {
	files := renderedFiles(t, baseParams)

	lines := strings.Split(files["README.rst"], "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "cookie_repo", lines[0])
	assert.Equal(t, strings.Repeat("=", len("cookie_repo")), lines[1])
	assert.Contains(t, files["README.rst"],
		"The full documentation is at https://cookie_repo.readthedocs.org.")
}

func TestRenderAll_Models(t *testing.T) {
	p := baseParams
	p.Models = "ChocolateChip,Zimsterne"
	files := renderedFiles(t, p)

	modelsPy := files["cookie_lover/models.py"]
	for _, model := range []string{"ChocolateChip", "Zimsterne"} {
		pattern := regexp.MustCompile(`(?m)^class ` + model + `\(TimeStampedModel\):$`)
		assert.True(t, pattern.MatchString(modelsPy),
			"missing anchored class declaration for %s:\n%s", model, modelsPy)
	}
}

func TestRenderAll_NoModels(t *testing.T) {
	files := renderedFiles(t, baseParams)

	modelsPy := files["cookie_lover/models.py"]
	assert.NotContains(t, modelsPy, "class ")
	assert.Contains(t, modelsPy, "from model_utils.models import TimeStampedModel")
}

func TestRenderAll_AppConfig(t *testing.T) {
	files := renderedFiles(t, baseParams)

	initPy := files["cookie_lover/__init__.py"]
	pattern := regexp.MustCompile(`(?m)^default_app_config = 'cookie_lover\.apps\.CookieLoverConfig'  #`)
	assert.True(t, pattern.MatchString(initPy), "init pattern not found:\n%s", initPy)

	appsPy := files["cookie_lover/apps.py"]
	pattern = regexp.MustCompile(`(?m)^class CookieLoverConfig\(AppConfig\):$`)
	assert.True(t, pattern.MatchString(appsPy), "apps pattern not found:\n%s", appsPy)
}

func TestRenderAll_Licenses(t *testing.T) {
	tests := []struct {
		name    string
		license string
		marker  string
	}{
		{"agpl", "AGPL 3.0", "GNU AFFERO GENERAL PUBLIC LICENSE"},
		{"apache", "Apache Software License 2.0", "Apache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams
			p.OpenSourceLicense = tt.license
			files := renderedFiles(t, p)

			assert.Contains(t, files["LICENSE.txt"], tt.marker)
			assert.Contains(t, files["setup.py"], tt.license)
		})
	}
}

func TestRenderAll_SetupPy(t *testing.T) {
	files := renderedFiles(t, baseParams)

	setupPy := files["setup.py"]
	assert.Contains(t, setupPy, "VERSION = get_version('cookie_lover', '__init__.py')")
	assert.Contains(t, setupPy, "    author='edX',")
}

func TestRenderAll_DeterministicContent(t *testing.T) {
	p := baseParams
	p.Models = "ChocolateChip"

	first := renderedFiles(t, p)
	second := renderedFiles(t, p)
	assert.Equal(t, first, second)
}

func TestListFiles(t *testing.T) {
	files, err := ListFiles(baseParams)
	require.NoError(t, err)
	assert.Contains(t, files, "cookie_lover/models.py")
	assert.Contains(t, files, ".travis.yml")
}

func TestParams_ModelNames(t *testing.T) {
	tests := []struct {
		name   string
		models string
		want   []string
	}{
		{"empty", "", nil},
		{"single", "ChocolateChip", []string{"ChocolateChip"}},
		{"two", "ChocolateChip,Zimsterne", []string{"ChocolateChip", "Zimsterne"}},
		{"spaces", " ChocolateChip , Zimsterne ", []string{"ChocolateChip", "Zimsterne"}},
		{"trailing comma", "ChocolateChip,", []string{"ChocolateChip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Models: tt.models}
			assert.Equal(t, tt.want, p.ModelNames())
		})
	}
}

func TestParams_WithDefaults(t *testing.T) {
	p := baseParams.WithDefaults()
	assert.Equal(t, "edX", p.Author)
	assert.Equal(t, "0.1.0", p.Version)
	assert.Equal(t, "AGPL 3.0", p.OpenSourceLicense)
	assert.Equal(t, "cookie_lover", p.AppName)

	// Explicit values are not overwritten.
	q := Params{AppName: "a", RepoName: "b", Author: "someone"}.WithDefaults()
	assert.Equal(t, "someone", q.Author)
}
