package query

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vegasq/coursecat/course"
)

// RankKey selects the numeric column TopCourses ranks by.
type RankKey string

const (
	RankByHours        RankKey = "hours"
	RankByParticipants RankKey = "participants"
)

// ErrUnknownRankKey is returned by ParseRankKey for unsupported names.
var ErrUnknownRankKey = errors.New("unknown ranking key")

// ParseRankKey validates a ranking key name. TopCourses itself never fails;
// callers that want to reject typos use this first.
func ParseRankKey(s string) (RankKey, error) {
	switch RankKey(s) {
	case RankByHours, RankByParticipants:
		return RankKey(s), nil
	default:
		return "", fmt.Errorf("%w %q (want %s or %s)", ErrUnknownRankKey, s, RankByHours, RankByParticipants)
	}
}

// TopCourses returns up to topK distinct titles ranked by the column named
// by.
//
// "hours" ranks by total course hours; every other value ranks by
// participants. Rows are ordered by the ranking value, largest first, with
// equal values ordered by title. Titles are then deduplicated keeping their
// first position.
func (a *Analyzer) TopCourses(topK int, by string) []string {
	if topK <= 0 {
		return []string{}
	}

	rows := make([]*course.Course, len(a.courses))
	for i := range a.courses {
		rows[i] = &a.courses[i]
	}

	if RankKey(by) == RankByHours {
		slices.SortStableFunc(rows, func(x, y *course.Course) int {
			return compareDescThenTitle(x.TotalHours, y.TotalHours, x, y)
		})
	} else {
		slices.SortStableFunc(rows, func(x, y *course.Course) int {
			return compareDescThenTitle(x.Participants, y.Participants, x, y)
		})
	}

	titles := make([]string, len(rows))
	for i, c := range rows {
		titles[i] = c.Title
	}

	titles = dedupe(titles)
	if len(titles) > topK {
		titles = titles[:topK]
	}
	return titles
}

func compareDescThenTitle[T cmp.Ordered](xv, yv T, x, y *course.Course) int {
	if c := cmp.Compare(yv, xv); c != 0 {
		return c
	}
	return strings.Compare(x.Title, y.Title)
}
