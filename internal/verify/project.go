// Package verify asserts on the contents of a generated project tree.
package verify

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/djbake/cli/internal/errors"
)

// Project is a generated tree rooted at an explicit path. All file access
// goes through relative paths under Root; nothing in this package depends on
// the process working directory.
type Project struct {
	// Root is the absolute path of the generated project.
	Root string
}

// NewProject returns a Project for the given root.
func NewProject(root string) Project {
	return Project{Root: root}
}

// ReadFile reads a file by path relative to the project root.
func (p Project) ReadFile(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.Root, filepath.FromSlash(rel)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError(
				fmt.Sprintf("expected generated file %s is missing", rel), rel, "")
		}
		return "", fmt.Errorf("reading %s: %w", rel, err)
	}
	return string(data), nil
}

// ReadLines reads a file and returns its lines with surrounding whitespace
// trimmed.
func (p Project) ReadLines(rel string) ([]string, error) {
	content, err := p.ReadFile(rel)
	if err != nil {
		return nil, err
	}
	raw := strings.Split(content, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}

// assertContains fails with an assertion error when content lacks the
// literal marker.
func (p Project) assertContains(rel, marker string) error {
	content, err := p.ReadFile(rel)
	if err != nil {
		return err
	}
	if !strings.Contains(content, marker) {
		return errors.NewAssertionError(
			fmt.Sprintf("expected %q in %s", marker, rel), rel)
	}
	return nil
}

// assertMatchesLine fails with an assertion error when no line of the file
// matches the given line-anchored pattern. The pattern is wrapped in
// multi-line mode.
func (p Project) assertMatchesLine(rel, pattern string) error {
	content, err := p.ReadFile(rel)
	if err != nil {
		return err
	}
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	if !re.MatchString(content) {
		return errors.NewAssertionError(
			fmt.Sprintf("no line of %s matches %q", rel, pattern), rel)
	}
	return nil
}
