package query

import (
	"sort"
	"strings"
)

// SearchCourses returns the sorted, distinct titles of courses whose subject
// contains subject (case-insensitive), whose percent audited is at least
// minPercentAudited and whose total hours are at most maxTotalHours.
func (a *Analyzer) SearchCourses(subject string, minPercentAudited, maxTotalHours float64) []string {
	needle := strings.ToLower(subject)

	titles := make([]string, 0)
	for i := range a.courses {
		c := &a.courses[i]
		if !strings.Contains(strings.ToLower(c.Subject), needle) {
			continue
		}
		if c.PercentAudited < minPercentAudited || c.TotalHours > maxTotalHours {
			continue
		}
		titles = append(titles, c.Title)
	}

	titles = dedupe(titles)
	sort.Strings(titles)
	return titles
}
