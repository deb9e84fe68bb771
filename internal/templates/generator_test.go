package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "cookie_repo")

	gen := NewGenerator(GenerateOptions{
		TargetDir: target,
		Params:    baseParams,
	})

	result, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, target, result.TargetDir)
	assert.NotEmpty(t, result.Files)

	assert.FileExists(t, filepath.Join(target, "README.rst"))
	assert.FileExists(t, filepath.Join(target, "setup.py"))
	assert.FileExists(t, filepath.Join(target, "cookie_lover", "models.py"))
	assert.FileExists(t, filepath.Join(target, "cookie_lover", "templates", "cookie_lover", "base.html"))
}

func TestGenerator_RejectsInvalidParams(t *testing.T) {
	gen := NewGenerator(GenerateOptions{
		TargetDir: t.TempDir(),
		Params:    Params{AppName: "1bad", RepoName: "repo"},
	})

	_, err := gen.Generate()
	assert.Error(t, err)
}

func TestGenerator_NonEmptyTargetDir(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "existing.txt"), []byte("x"), 0o644))

	gen := NewGenerator(GenerateOptions{
		TargetDir: target,
		Params:    baseParams,
	})
	_, err := gen.Generate()
	assert.Error(t, err)

	// --force allows generation into a non-empty directory.
	gen = NewGenerator(GenerateOptions{
		TargetDir: target,
		Params:    baseParams,
		Force:     true,
	})
	_, err = gen.Generate()
	assert.NoError(t, err)
}
