// Package quality shells out to external code-quality tools against a
// generated project tree.
package quality

// Tool is one external quality tool invocation. The contract is exit code
// zero = pass, non-zero = fail with captured output.
type Tool struct {
	// Name is the binary name looked up on PATH.
	Name string

	// Args are fixed arguments. Per-file tools get the target file path
	// appended; tree-level tools run with Args as-is.
	Args []string
}

// DefaultFileTools returns the tool sequence run against every generated
// Python file, in order.
func DefaultFileTools() []Tool {
	return []Tool{
		{Name: "pylint"},
		{Name: "pycodestyle"},
		{Name: "pydocstyle"},
		{Name: "isort", Args: []string{"--check-only", "--diff"}},
	}
}

// DefaultTreeTools returns the tree-level checks: the build-file sanity
// target, the PyPI long-description check, and the documentation linter.
func DefaultTreeTools() []Tool {
	return []Tool{
		{Name: "make", Args: []string{"help"}},
		{Name: "python", Args: []string{"setup.py", "check", "--restructuredtext", "--strict"}},
		{Name: "doc8", Args: []string{"README.rst", "--ignore-path", "docs/_build"}},
		{Name: "doc8", Args: []string{"docs", "--ignore-path", "docs/_build"}},
	}
}

// FilterTools returns tools whose names are not in the disabled list.
func FilterTools(tools []Tool, disabled []string) []Tool {
	if len(disabled) == 0 {
		return tools
	}

	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}

	kept := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		if !skip[tool.Name] {
			kept = append(kept, tool)
		}
	}
	return kept
}
