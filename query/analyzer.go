package query

import (
	"github.com/vegasq/coursecat/course"
	"github.com/vegasq/coursecat/internal/filter"
	"github.com/vegasq/coursecat/reader"
)

// Analyzer answers queries over an immutable course dataset.
type Analyzer struct {
	courses []course.Course
}

// New returns an analyzer over a private copy of courses.
func New(courses []course.Course) *Analyzer {
	owned := make([]course.Course, len(courses))
	copy(owned, courses)
	return &Analyzer{courses: owned}
}

// Load reads the dataset file (or glob of files) at pattern and returns an
// analyzer over it together with the ingestion counters.
func Load(pattern string, opts reader.Options) (*Analyzer, reader.Stats, error) {
	courses, stats, err := reader.ReadMultipleFiles(pattern, opts)
	if err != nil {
		return nil, reader.Stats{}, err
	}
	return &Analyzer{courses: courses}, stats, nil
}

// Len returns the number of course rows.
func (a *Analyzer) Len() int {
	return len(a.courses)
}

// Courses returns a copy of the rows in dataset order.
func (a *Analyzer) Courses() []course.Course {
	out := make([]course.Course, len(a.courses))
	copy(out, a.courses)
	return out
}

// Where returns a new analyzer holding only the rows that match expr.
func (a *Analyzer) Where(expr filter.Expression) *Analyzer {
	return &Analyzer{courses: filter.Apply(a.courses, expr)}
}

// dedupe keeps the first occurrence of every string, preserving order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
