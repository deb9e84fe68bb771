package verify

import (
	"fmt"
	"strings"

	"github.com/djbake/cli/internal/errors"
	"github.com/djbake/cli/internal/templates"
)

// Outcome is the result of one check against one project.
type Outcome struct {
	// Check is the check name.
	Check string

	// Skipped marks an intentional no-op for the parameter set.
	Skipped bool

	// Err is the assertion failure, nil on pass or skip.
	Err error
}

// Status returns "pass", "skip", or "fail".
func (o Outcome) Status() string {
	switch {
	case o.Skipped:
		return "skip"
	case o.Err != nil:
		return "fail"
	default:
		return "pass"
	}
}

// Report aggregates the outcomes of one suite run.
type Report struct {
	// Outcomes holds one entry per check, in suite order.
	Outcomes []Outcome
}

// RunAll runs every check of the suite against the project. Checks are
// independent: all of them run regardless of earlier failures.
func RunAll(p Project, params templates.Params) Report {
	checks := Checks()
	report := Report{Outcomes: make([]Outcome, 0, len(checks))}

	for _, check := range checks {
		err := check.Run(p, params)
		outcome := Outcome{Check: check.Name}
		if errors.IsSkipped(err) {
			outcome.Skipped = true
		} else {
			outcome.Err = err
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report
}

// Failed returns the outcomes that failed.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Passed reports whether no check failed.
func (r Report) Passed() bool {
	return len(r.Failed()) == 0
}

// Summary returns a one-line pass/skip/fail tally.
func (r Report) Summary() string {
	var pass, skip, fail int
	for _, o := range r.Outcomes {
		switch o.Status() {
		case "pass":
			pass++
		case "skip":
			skip++
		default:
			fail++
		}
	}

	parts := []string{fmt.Sprintf("%d passed", pass)}
	if skip > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skip))
	}
	if fail > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", fail))
	}
	return strings.Join(parts, ", ")
}
