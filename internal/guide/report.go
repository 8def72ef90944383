package guide

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Report aggregates lint results across files.
type Report struct {
	Files      []string    `json:"files"`
	Sections   int         `json:"sections"`
	Violations []Violation `json:"violations"`
}

// Clean reports whether no violations were found.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}

// LintFiles parses and lints every path concurrently and merges the
// results. The report is ordered by path, then line, so output is stable
// regardless of scheduling.
func LintFiles(ctx context.Context, paths []string, rules Rules) (*Report, error) {
	report := &Report{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open guide: %w", err)
			}
			defer f.Close()

			doc, err := Parse(path, f)
			if err != nil {
				return err
			}
			violations := Lint(doc, rules)

			mu.Lock()
			report.Files = append(report.Files, path)
			report.Sections += len(doc.Sections)
			report.Violations = append(report.Violations, violations...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(report.Files)
	sort.SliceStable(report.Violations, func(i, j int) bool {
		if report.Violations[i].Path != report.Violations[j].Path {
			return report.Violations[i].Path < report.Violations[j].Path
		}
		return report.Violations[i].Line < report.Violations[j].Line
	})
	return report, nil
}
