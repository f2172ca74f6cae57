package batch

import (
	"errors"
	"fmt"
	"strings"
)

// Result is the outcome for one file of a batch operation.
type Result struct {
	Path    string
	Success bool
	Message string
	Err     error
}

// Report aggregates per-file results. Results keep input order.
type Report struct {
	Op        string
	Results   []Result
	Succeeded int
	Failed    int
}

func newReport(op string, results []Result) *Report {
	r := &Report{Op: op, Results: results}
	for _, res := range results {
		if res.Success {
			r.Succeeded++
		} else {
			r.Failed++
		}
	}
	return r
}

// Err joins the per-file errors, each prefixed with its path. It returns
// nil when every file succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Success {
			continue
		}
		err := res.Err
		if err == nil {
			err = errors.New("failed")
		}
		errs = append(errs, fmt.Errorf("%s: %w", res.Path, err))
	}
	return errors.Join(errs...)
}

// ErrorString renders the accumulated failures one per line, or "" when
// there were none.
func (r *Report) ErrorString() string {
	err := r.Err()
	if err == nil {
		return ""
	}
	return strings.TrimSpace(err.Error())
}
