// Package bake renders the Django skeleton into ephemeral project trees.
package bake

import (
	"context"
	"fmt"
	"os"

	"github.com/djbake/cli/internal/output"
	"github.com/djbake/cli/internal/templates"
)

// Result is the outcome of one bake. It mirrors the template-engine
// collaborator contract: the error is stored alongside the project path and
// callers must check it via Unwrap before touching the tree.
type Result struct {
	// Project is the root of the generated tree. Empty when Err is set.
	Project string

	// Err is the rendering error, if any.
	Err error
}

// Unwrap returns the stored rendering error, if any.
func (r *Result) Unwrap() error {
	return r.Err
}

// Close deletes the generated tree. Safe to call on a failed result.
func (r *Result) Close() error {
	if r.Project == "" {
		return nil
	}
	return os.RemoveAll(r.Project)
}

// Baker renders parameter sets into fresh temporary directories.
type Baker struct {
	// Keep retains generated trees instead of deleting them on bake failure.
	Keep bool
}

// Bake renders the skeleton with the given parameter set into a fresh
// temporary directory. Exactly one parameter set maps to exactly one
// generated tree; the caller owns the tree until Result.Close.
func (b *Baker) Bake(ctx context.Context, params templates.Params) *Result {
	if err := ctx.Err(); err != nil {
		return &Result{Err: err}
	}

	dir, err := os.MkdirTemp("", "djbake-*")
	if err != nil {
		return &Result{Err: fmt.Errorf("creating bake directory: %w", err)}
	}

	gen := templates.NewGenerator(templates.GenerateOptions{
		TargetDir: dir,
		Params:    params,
		Force:     true, // dir is freshly created and empty
	})

	if _, err := gen.Generate(); err != nil {
		if !b.Keep {
			_ = os.RemoveAll(dir)
		}
		return &Result{Err: fmt.Errorf("baking project: %w", err)}
	}

	output.Debug("baked project", "app", params.AppName, "dir", dir)
	return &Result{Project: dir}
}

// BakeInside bakes the parameter set and runs fn from inside the generated
// directory, restoring the previous working directory afterwards. The tree
// is deleted before returning unless Keep is set. Provided as a convenience
// for callers that shell out to tools expecting a project-relative cwd;
// content checks take an explicit root instead and never need this.
func (b *Baker) BakeInside(ctx context.Context, params templates.Params, fn func(project string) error) error {
	result := b.Bake(ctx, params)
	if err := result.Unwrap(); err != nil {
		return err
	}
	defer func() {
		if !b.Keep {
			_ = result.Close()
		}
	}()

	return InsideDir(result.Project, func() error {
		return fn(result.Project)
	})
}
