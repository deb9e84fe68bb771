package bake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djbake/cli/internal/templates"
)

var baseParams = templates.Params{
	AppName:  "cookie_lover",
	RepoName: "cookie_repo",
}

func TestBaker_Bake(t *testing.T) {
	b := &Baker{}
	result := b.Bake(context.Background(), baseParams)
	require.NoError(t, result.Unwrap())
	t.Cleanup(func() { _ = result.Close() })

	assert.DirExists(t, result.Project)
	assert.FileExists(t, filepath.Join(result.Project, "README.rst"))
	assert.FileExists(t, filepath.Join(result.Project, "cookie_lover", "urls.py"))
}

func TestBaker_Bake_InvalidParams(t *testing.T) {
	b := &Baker{}
	result := b.Bake(context.Background(), templates.Params{AppName: "not valid", RepoName: "x"})
	assert.Error(t, result.Unwrap())
	assert.Empty(t, result.Project)
}

func TestBaker_Bake_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Baker{}
	result := b.Bake(ctx, baseParams)
	assert.ErrorIs(t, result.Unwrap(), context.Canceled)
}

func TestBaker_SeparateTreesPerBake(t *testing.T) {
	b := &Baker{}
	first := b.Bake(context.Background(), baseParams)
	require.NoError(t, first.Unwrap())
	second := b.Bake(context.Background(), baseParams)
	require.NoError(t, second.Unwrap())
	t.Cleanup(func() {
		_ = first.Close()
		_ = second.Close()
	})

	assert.NotEqual(t, first.Project, second.Project)
}

func TestResult_Close(t *testing.T) {
	b := &Baker{}
	result := b.Bake(context.Background(), baseParams)
	require.NoError(t, result.Unwrap())

	require.NoError(t, result.Close())
	_, err := os.Stat(result.Project)
	assert.True(t, os.IsNotExist(err))
}

func TestInsideDir_RestoresOnSuccess(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	target := t.TempDir()
	var seen string
	err = InsideDir(target, func() error {
		seen, _ = os.Getwd()
		return nil
	})
	require.NoError(t, err)

	// Resolve symlinks so macOS /private/var temp paths compare equal.
	wantTarget, _ := filepath.EvalSymlinks(target)
	gotTarget, _ := filepath.EvalSymlinks(seen)
	assert.Equal(t, wantTarget, gotTarget)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInsideDir_RestoresOnError(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	wantErr := assert.AnError
	err = InsideDir(t.TempDir(), func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInsideDir_MissingDir(t *testing.T) {
	err := InsideDir(filepath.Join(t.TempDir(), "does-not-exist"), func() error {
		t.Fatal("fn must not run when chdir fails")
		return nil
	})
	assert.Error(t, err)
}

func TestBakeInside(t *testing.T) {
	b := &Baker{}
	var project string
	err := b.BakeInside(context.Background(), baseParams, func(p string) error {
		project = p
		_, statErr := os.Stat(filepath.Join(p, "setup.py"))
		return statErr
	})
	require.NoError(t, err)

	// Tree is cleaned up after the scoped call.
	_, err = os.Stat(project)
	assert.True(t, os.IsNotExist(err))
}
