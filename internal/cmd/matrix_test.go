// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixCmd(t *testing.T) {
	cmd := NewMatrixCmd()

	assert.Equal(t, "matrix", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("matrix"))
}

func TestMatrixCmd_Execute(t *testing.T) {
	matrixFileFlag = ""
	t.Setenv("DJBAKE_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	root := NewRootCmd()
	root.SetArgs([]string{"matrix"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.NoError(t, root.Execute())
}

func TestMatrixCmd_WithExtraFile(t *testing.T) {
	matrixFileFlag = ""
	t.Setenv("DJBAKE_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	matrixFile := filepath.Join(t.TempDir(), "extra.yaml")
	content := `
variants:
  - name: extra
    params:
      app_name: extra_app
      repo_name: extra_repo
`
	require.NoError(t, os.WriteFile(matrixFile, []byte(content), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"matrix", "--matrix", matrixFile})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.NoError(t, root.Execute())
}

func TestMatrixCmd_DuplicateName(t *testing.T) {
	matrixFileFlag = ""
	t.Setenv("DJBAKE_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	matrixFile := filepath.Join(t.TempDir(), "dup.yaml")
	content := `
variants:
  - name: no models
    params:
      app_name: extra_app
      repo_name: extra_repo
`
	require.NoError(t, os.WriteFile(matrixFile, []byte(content), 0o644))

	root := NewRootCmd()
	root.SetArgs([]string{"matrix", "--matrix", matrixFile})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate variant name")
}
