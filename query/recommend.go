package query

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// RecommendLimit is the number of titles RecommendCourses returns at most.
const RecommendLimit = 10

// Profile describes the learner a recommendation is made for. Gender and
// Degree are 0/1 flags: Gender 1 means male, Degree 1 means a bachelor's
// degree or higher.
type Profile struct {
	Age    int `json:"age" validate:"min=0,max=150"`
	Gender int `json:"gender" validate:"oneof=0 1"`
	Degree int `json:"degree" validate:"oneof=0 1"`
}

// Demographics are the per-course averages a profile is compared with.
type Demographics struct {
	MedianAge     float64
	PercentMale   float64
	PercentDegree float64
}

// SimilarityScore is the squared Euclidean distance between a profile and a
// course's demographics. Lower is more similar; the flags are scaled to the
// 0-100 percentage range of the dataset.
func SimilarityScore(p Profile, d Demographics) float64 {
	age := float64(p.Age) - d.MedianAge
	male := float64(p.Gender*100) - d.PercentMale
	degree := float64(p.Degree*100) - d.PercentDegree
	return age*age + male*male + degree*degree
}

// courseGroup accumulates every run of one course number.
type courseGroup struct {
	sum    Demographics
	runs   int
	title  string
	latest time.Time
}

func (g *courseGroup) mean() Demographics {
	n := float64(g.runs)
	return Demographics{
		MedianAge:     g.sum.MedianAge / n,
		PercentMale:   g.sum.PercentMale / n,
		PercentDegree: g.sum.PercentDegree / n,
	}
}

type scoredTitle struct {
	title string
	score float64
}

// RecommendCourses returns up to RecommendLimit titles whose audience best
// matches the given age, gender flag and degree flag.
//
// Rows are grouped by course number and their demographics averaged. Each
// group is represented by the title of its most recently launched run (the
// first such run when launch dates tie). Groups are ordered by
// SimilarityScore, then by title, and titles are deduplicated.
func (a *Analyzer) RecommendCourses(age, gender, isBachelorOrHigher int) []string {
	profile := Profile{Age: age, Gender: gender, Degree: isBachelorOrHigher}

	index := make(map[string]int)
	groups := make([]*courseGroup, 0)
	for i := range a.courses {
		c := &a.courses[i]
		pos, ok := index[c.Number]
		if !ok {
			pos = len(groups)
			index[c.Number] = pos
			groups = append(groups, &courseGroup{title: c.Title, latest: c.LaunchDate})
		}
		g := groups[pos]
		g.sum.MedianAge += c.MedianAge
		g.sum.PercentMale += c.PercentMale
		g.sum.PercentDegree += c.PercentDegree
		g.runs++
		if c.LaunchDate.After(g.latest) {
			g.latest = c.LaunchDate
			g.title = c.Title
		}
	}

	scored := make([]scoredTitle, len(groups))
	for i, g := range groups {
		scored[i] = scoredTitle{title: g.title, score: SimilarityScore(profile, g.mean())}
	}
	slices.SortFunc(scored, func(x, y scoredTitle) int {
		if c := cmp.Compare(x.score, y.score); c != 0 {
			return c
		}
		return strings.Compare(x.title, y.title)
	})

	titles := make([]string, len(scored))
	for i, s := range scored {
		titles[i] = s.title
	}
	titles = dedupe(titles)
	if len(titles) > RecommendLimit {
		titles = titles[:RecommendLimit]
	}
	return titles
}
