package verify

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/djbake/cli/internal/errors"
	"github.com/djbake/cli/internal/templates"
)

// CheckIdempotence compares two bakes of the same parameter set. Every file
// the skeleton produces must be byte-identical between the trees; a
// mismatch in a YAML file embeds a dyff report in the failure message.
func CheckIdempotence(first, second Project, params templates.Params) error {
	files, err := templates.ListFiles(params)
	if err != nil {
		return err
	}

	for _, rel := range files {
		a, err := first.ReadFile(rel)
		if err != nil {
			return err
		}
		b, err := second.ReadFile(rel)
		if err != nil {
			return err
		}

		if a == b {
			continue
		}

		if isYAML(rel) {
			diff, diffErr := yamlDiff(rel, []byte(a), []byte(b))
			if diffErr == nil && diff != "" {
				return errors.NewAssertionError(
					fmt.Sprintf("re-rendering produced different content for %s:\n%s", rel, diff), rel)
			}
		}

		return errors.NewAssertionError(
			fmt.Sprintf("re-rendering produced different content for %s (first difference at byte %d)",
				rel, firstDifference(a, b)), rel)
	}

	return nil
}

// isYAML reports whether a path looks like a YAML document.
func isYAML(rel string) bool {
	return strings.HasSuffix(rel, ".yml") || strings.HasSuffix(rel, ".yaml")
}

// firstDifference returns the offset of the first differing byte.
func firstDifference(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// yamlDiff renders a human-readable dyff report for two YAML documents.
func yamlDiff(name string, a, b []byte) (string, error) {
	from, err := parseYAMLInput(name+" (first bake)", a)
	if err != nil {
		return "", fmt.Errorf("parsing first bake of %s: %w", name, err)
	}
	to, err := parseYAMLInput(name+" (second bake)", b)
	if err != nil {
		return "", fmt.Errorf("parsing second bake of %s: %w", name, err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing %s: %w", name, err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{
			Location:  name,
			Documents: nil,
		}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	result := buf.String()

	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
