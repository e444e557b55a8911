package query

import (
	"sort"
	"strings"
)

// InstructorCourses holds the titles an instructor taught alone and the
// titles taught with co-instructors. Both lists are sorted and distinct.
type InstructorCourses struct {
	Independent []string `json:"independent" yaml:"independent"`
	CoAuthored  []string `json:"co_authored" yaml:"co_authored"`
}

type titleSets struct {
	independent map[string]struct{}
	coAuthored  map[string]struct{}
}

// InstructorCourses indexes course titles by instructor.
//
// The instructors column is a comma-separated list of names. A row with a
// single name adds its title to that instructor's independent set; a row
// with several names adds the title to the co-authored set of each of them.
func (a *Analyzer) InstructorCourses() map[string]InstructorCourses {
	sets := make(map[string]*titleSets)

	for i := range a.courses {
		c := &a.courses[i]
		solo := !strings.Contains(c.Instructors, ",")

		for _, name := range strings.Split(c.Instructors, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			s, ok := sets[name]
			if !ok {
				s = &titleSets{
					independent: make(map[string]struct{}),
					coAuthored:  make(map[string]struct{}),
				}
				sets[name] = s
			}
			if solo {
				s.independent[c.Title] = struct{}{}
			} else {
				s.coAuthored[c.Title] = struct{}{}
			}
		}
	}

	result := make(map[string]InstructorCourses, len(sets))
	for name, s := range sets {
		result[name] = InstructorCourses{
			Independent: sortedKeys(s.independent),
			CoAuthored:  sortedKeys(s.coAuthored),
		}
	}
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
