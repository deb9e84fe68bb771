package quality

import (
	"context"
	goerrors "errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/djbake/cli/internal/errors"
	"github.com/djbake/cli/internal/output"
)

// Failure records one tool failure, with the captured output embedded in Err.
type Failure struct {
	// File is the project-relative file the tool ran against; empty for
	// tree-level checks.
	File string

	// Tool is the failing tool's name.
	Tool string

	// Err carries the exit status and captured output.
	Err error
}

// Runner invokes external quality tools against a project tree. Commands
// run with the project root as their working directory; the process working
// directory is never changed.
type Runner struct {
	// Root is the project root all invocations are relative to.
	Root string

	// FileTools run against every .py file, in order, fail-fast per file.
	FileTools []Tool

	// TreeTools run once from the project root after the file walk.
	TreeTools []Tool
}

// NewRunner creates a runner with the default tool set.
func NewRunner(root string) *Runner {
	return &Runner{
		Root:      root,
		FileTools: DefaultFileTools(),
		TreeTools: DefaultTreeTools(),
	}
}

// run invokes one tool. No timeout is imposed here; a hanging tool hangs
// the run unless the caller's context carries a deadline.
func (r *Runner) run(ctx context.Context, tool Tool, extraArgs ...string) error {
	args := append(append([]string{}, tool.Args...), extraArgs...)
	cmd := exec.CommandContext(ctx, tool.Name, args...)
	cmd.Dir = r.Root

	output.Debug("running tool", "tool", tool.Name, "args", strings.Join(args, " "))

	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	if goerrors.Is(err, exec.ErrNotFound) {
		return errors.NewNotFoundError(
			fmt.Sprintf("quality tool %s is not installed", tool.Name), "",
			fmt.Sprintf("Install %s or disable it in the harness configuration.", tool.Name))
	}

	return errors.NewToolError(
		fmt.Sprintf("%s %s: %v", tool.Name, strings.Join(args, " "), err),
		map[string]string{"tool": tool.Name},
		string(out))
}

// CheckFile runs every file tool against one project-relative file. The
// first failing tool aborts the remaining tools for this file.
func (r *Runner) CheckFile(ctx context.Context, rel string) error {
	for _, tool := range r.FileTools {
		if err := r.run(ctx, tool, rel); err != nil {
			return &toolError{file: rel, tool: tool.Name, err: err}
		}
	}
	return nil
}

// CheckTree walks the project for Python files and runs the file tools
// against each, then runs the tree-level checks. A failure on one file does
// not skip the remaining files; within one file the first failing tool
// aborts that file's remaining tools.
func (r *Runner) CheckTree(ctx context.Context) []Failure {
	var failures []Failure

	walkErr := filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".py") {
			return nil
		}

		rel, err := filepath.Rel(r.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if err := r.CheckFile(ctx, rel); err != nil {
			var te *toolError
			if goerrors.As(err, &te) {
				failures = append(failures, Failure{File: te.file, Tool: te.tool, Err: te.err})
			} else {
				failures = append(failures, Failure{File: rel, Err: err})
			}
		}
		return nil
	})
	if walkErr != nil {
		failures = append(failures, Failure{Err: fmt.Errorf("walking project tree: %w", walkErr)})
		return failures
	}

	for _, tool := range r.TreeTools {
		if err := r.run(ctx, tool); err != nil {
			failures = append(failures, Failure{Tool: tool.Name, Err: err})
		}
	}

	return failures
}

// toolError ties a tool failure to the file it ran against.
type toolError struct {
	file string
	tool string
	err  error
}

func (e *toolError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.tool, e.file, e.err)
}

func (e *toolError) Unwrap() error {
	return e.err
}
