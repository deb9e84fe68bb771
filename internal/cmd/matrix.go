// Package cmd provides CLI command implementations.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/djbake/cli/internal/matrix"
	"github.com/djbake/cli/internal/output"
)

var matrixFileFlag string

// NewMatrixCmd creates the matrix command.
func NewMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "List the parameter-set variants",
		Long: `List the variants the verify command bakes.

The built-in matrix covers the baseline parameter set plus one variant per
optional feature. Extra variants can be merged from a YAML file.`,
		RunE: runMatrix,
	}

	cmd.Flags().StringVar(&matrixFileFlag, "matrix", "",
		"YAML file of extra variants to merge (env: DJBAKE_MATRIX)")

	return cmd
}

func runMatrix(cmd *cobra.Command, args []string) error {
	variants := matrix.Variants()

	matrixPath := matrixFileFlag
	if matrixPath == "" {
		matrixPath = GetConfig().Matrix
	}
	if matrixPath != "" {
		loaded, err := matrix.Load(matrixPath)
		if err != nil {
			return err
		}
		variants, err = matrix.Merge(variants, loaded)
		if err != nil {
			return err
		}
	}

	tbl := output.NewTable("NAME", "APP", "MODELS", "LICENSE", "DESCRIPTION")
	for _, v := range variants {
		params := v.Params.WithDefaults()
		models := strings.Join(params.ModelNames(), ", ")
		if models == "" {
			models = "-"
		}
		tbl.Row(v.Name, params.AppName, models, params.OpenSourceLicense, v.Description)
	}

	output.Print(tbl.String())
	return nil
}
