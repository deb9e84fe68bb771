// Package cmd provides CLI command implementations.
package cmd

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/djbake/cli/internal/bake"
	oerrors "github.com/djbake/cli/internal/errors"
	"github.com/djbake/cli/internal/matrix"
	"github.com/djbake/cli/internal/output"
	"github.com/djbake/cli/internal/quality"
	"github.com/djbake/cli/internal/templates"
	"github.com/djbake/cli/internal/verify"
)

// Verify command flags
var (
	verifyVariantFlags        []string
	verifyMatrixFlag          string
	verifyKeepFlag            bool
	verifySkipQualityFlag     bool
	verifySkipIdempotenceFlag bool
)

// NewVerifyCmd creates the verify command.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Bake every matrix variant and verify the generated trees",
		Long: `Bake the skeleton once per matrix variant and run the assertion
suite against each generated tree.

Each variant gets a fresh temporary tree. The suite checks the rendered
files, re-bakes to confirm output is deterministic, and runs the Python
quality tools against every generated source file.

Examples:
  # Verify the full built-in matrix
  djbake verify

  # Verify a single variant, keeping its tree for inspection
  djbake verify --variant "two models" --keep

  # Verify without external tools (no Python toolchain required)
  djbake verify --skip-quality

  # Merge extra variants from a YAML file
  djbake verify --matrix extra-variants.yaml`,
		RunE: runVerify,
	}

	cmd.Flags().StringArrayVar(&verifyVariantFlags, "variant", nil,
		"Variant to verify (can be repeated, default: all)")
	cmd.Flags().StringVar(&verifyMatrixFlag, "matrix", "",
		"YAML file of extra variants to merge (env: DJBAKE_MATRIX)")
	cmd.Flags().BoolVar(&verifyKeepFlag, "keep", false,
		"Keep generated trees instead of removing them (env: DJBAKE_KEEP)")
	cmd.Flags().BoolVar(&verifySkipQualityFlag, "skip-quality", false,
		"Skip the external quality tool pass")
	cmd.Flags().BoolVar(&verifySkipIdempotenceFlag, "skip-idempotence", false,
		"Skip the re-bake determinism check")

	return cmd
}

// variantResult aggregates what happened to one variant.
type variantResult struct {
	assertionFailures int
	qualityFailures   []quality.Failure
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := GetConfig()

	variants, err := resolveVariants(cfg.Matrix)
	if err != nil {
		return err
	}

	keep := verifyKeepFlag || cfg.Keep
	disabled := cfg.Quality.Disabled

	totalAssertion := 0
	var toolFailures []quality.Failure

	for _, v := range variants {
		res, err := verifyVariant(ctx, v, keep, disabled)
		if err != nil {
			return err
		}
		totalAssertion += res.assertionFailures
		toolFailures = append(toolFailures, res.qualityFailures...)
	}

	if totalAssertion > 0 {
		return &oerrors.ExitError{
			Code:    ExitValidationError,
			Err:     fmt.Errorf("%d check(s) failed", totalAssertion),
			Printed: false,
		}
	}

	if len(toolFailures) > 0 {
		code := ExitToolFailure
		// A variant that only failed because tools are missing exits
		// differently from one whose tools found problems.
		missingOnly := true
		for _, f := range toolFailures {
			if !goerrors.Is(f.Err, oerrors.ErrNotFound) {
				missingOnly = false
				break
			}
		}
		if missingOnly {
			code = ExitNotFound
		}
		return &oerrors.ExitError{
			Code: code,
			Err:  fmt.Errorf("%d quality tool failure(s)", len(toolFailures)),
		}
	}

	output.Println(output.FormatCheckmark(
		fmt.Sprintf("All %d variant(s) verified", len(variants))))

	return nil
}

// resolveVariants builds the variant set from the built-in matrix, an
// optional extra matrix file, and the --variant filter.
func resolveVariants(configMatrix string) ([]matrix.Variant, error) {
	variants := matrix.Variants()

	matrixPath := verifyMatrixFlag
	if matrixPath == "" {
		matrixPath = configMatrix
	}
	if matrixPath != "" {
		loaded, err := matrix.Load(matrixPath)
		if err != nil {
			return nil, err
		}
		variants, err = matrix.Merge(variants, loaded)
		if err != nil {
			return nil, err
		}
	}

	if len(verifyVariantFlags) == 0 {
		return variants, nil
	}

	selected := make([]matrix.Variant, 0, len(verifyVariantFlags))
	for _, name := range verifyVariantFlags {
		v, err := matrix.Get(variants, name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, v)
	}
	return selected, nil
}

// verifyVariant bakes one variant and runs the full suite against it.
func verifyVariant(ctx context.Context, v matrix.Variant, keep bool, disabled []string) (*variantResult, error) {
	params := v.Params.WithDefaults()
	baker := &bake.Baker{Keep: keep}

	res := baker.Bake(ctx, params)
	if err := res.Unwrap(); err != nil {
		return nil, fmt.Errorf("variant %q: %w", v.Name, err)
	}
	defer func() {
		if keep {
			output.Info("kept baked tree", "variant", v.Name, "dir", res.Project)
			return
		}
		_ = res.Close()
	}()

	project := verify.NewProject(res.Project)
	result := &variantResult{}

	report := verify.RunAll(project, params)
	for _, o := range report.Outcomes {
		output.Println(output.FormatCheckLine(v.Name, o.Check, o.Status()))
		if o.Status() == "fail" {
			output.Error("check failed", "variant", v.Name, "check", o.Check, "error", o.Err)
			result.assertionFailures++
		}
	}
	output.Println(output.StyleSummary.Render(fmt.Sprintf("%s: %s", v.Name, report.Summary())))

	if !verifySkipIdempotenceFlag {
		if err := runIdempotence(ctx, baker, project, params, keep); err != nil {
			output.Println(output.FormatCheckLine(v.Name, "idempotence", "fail"))
			output.Error("check failed", "variant", v.Name, "check", "idempotence", "error", err)
			result.assertionFailures++
		} else {
			output.Println(output.FormatCheckLine(v.Name, "idempotence", "pass"))
		}
	}

	if !verifySkipQualityFlag {
		result.qualityFailures = runQuality(ctx, res.Project, v.Name, disabled)
	}

	return result, nil
}

// runIdempotence bakes the variant a second time and compares the trees.
func runIdempotence(ctx context.Context, baker *bake.Baker, first verify.Project, params templates.Params, keep bool) error {
	second := baker.Bake(ctx, params)
	if err := second.Unwrap(); err != nil {
		return fmt.Errorf("second bake: %w", err)
	}
	defer func() {
		if !keep {
			_ = second.Close()
		}
	}()

	return verify.CheckIdempotence(first, verify.NewProject(second.Project), params)
}

// runQuality runs the external tool pass, behind a spinner on a TTY.
func runQuality(ctx context.Context, root, variantName string, disabled []string) []quality.Failure {
	runner := quality.NewRunner(root)
	runner.FileTools = quality.FilterTools(runner.FileTools, disabled)
	runner.TreeTools = quality.FilterTools(runner.TreeTools, disabled)

	var failures []quality.Failure
	action := func() error {
		failures = runner.CheckTree(ctx)
		return nil
	}

	_ = output.RunWithSpinner(ctx, action,
		output.WithTitle(fmt.Sprintf("Running quality tools (%s)...", variantName)))

	if len(failures) == 0 {
		output.Println(output.FormatCheckLine(variantName, "quality", "pass"))
		return nil
	}

	output.Println(output.FormatCheckLine(variantName, "quality", "fail"))
	for _, f := range failures {
		if f.File != "" {
			output.Error("tool failed", "variant", variantName, "file", f.File, "tool", f.Tool, "error", f.Err)
		} else {
			output.Error("tool failed", "variant", variantName, "tool", f.Tool, "error", f.Err)
		}
	}
	return failures
}
