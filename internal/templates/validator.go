package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/djbake/cli/internal/errors"
)

// Python identifier validation regex. App and model names become Python
// symbols in the generated tree, so they must be valid identifiers.
var pythonIdentifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Repo names may additionally contain hyphens (they name a directory and a
// PyPI distribution, not a Python symbol).
var repoNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateAppName checks that an app name is a usable Python identifier.
func ValidateAppName(name string) error {
	if name == "" {
		return fmt.Errorf("app name cannot be empty")
	}
	if !pythonIdentifierRegex.MatchString(name) {
		return fmt.Errorf("invalid app name %q: must be a Python identifier (letters, digits, underscores, not starting with a digit)", name)
	}
	if isPythonKeyword(name) {
		return fmt.Errorf("invalid app name %q: cannot use a Python keyword", name)
	}
	return nil
}

// ValidateRepoName checks that a repo name is a valid distribution name.
func ValidateRepoName(name string) error {
	if name == "" {
		return fmt.Errorf("repo name cannot be empty")
	}
	if !repoNameRegex.MatchString(name) {
		return fmt.Errorf("invalid repo name %q: must start with a letter and contain only letters, digits, hyphens, and underscores", name)
	}
	return nil
}

// ValidateModelName checks that a model class name is a CapWords identifier.
func ValidateModelName(name string) error {
	if name == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if !pythonIdentifierRegex.MatchString(name) {
		return fmt.Errorf("invalid model name %q: must be a Python identifier", name)
	}
	if !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("invalid model name %q: class names must start with an uppercase letter", name)
	}
	return nil
}

// Validate checks a full parameter set: names, model list, and license.
// Failures carry the validation sentinel for exit-code mapping.
func Validate(p Params) error {
	if err := ValidateAppName(p.AppName); err != nil {
		return errors.Wrap(errors.ErrValidation, err.Error())
	}
	if err := ValidateRepoName(p.RepoName); err != nil {
		return errors.Wrap(errors.ErrValidation, err.Error())
	}
	for _, model := range p.ModelNames() {
		if err := ValidateModelName(model); err != nil {
			return errors.Wrap(errors.ErrValidation, err.Error())
		}
	}
	p = p.WithDefaults()
	if _, err := GetLicense(p.OpenSourceLicense); err != nil {
		return errors.Wrap(errors.ErrValidation, err.Error())
	}
	return nil
}

// CapWords converts a snake_case name to CapWords (cookie_lover becomes
// CookieLover).
func CapWords(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// isPythonKeyword checks if a name is a Python keyword.
func isPythonKeyword(name string) bool {
	keywords := map[string]bool{
		"False": true, "None": true, "True": true,
		"and": true, "as": true, "assert": true, "async": true,
		"await": true, "break": true, "class": true, "continue": true,
		"def": true, "del": true, "elif": true, "else": true,
		"except": true, "finally": true, "for": true, "from": true,
		"global": true, "if": true, "import": true, "in": true,
		"is": true, "lambda": true, "nonlocal": true, "not": true,
		"or": true, "pass": true, "raise": true, "return": true,
		"try": true, "while": true, "with": true, "yield": true,
	}
	return keywords[name]
}
