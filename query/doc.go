// Package query is the analytical layer of coursecat.
//
// An Analyzer holds a course dataset that was loaded once and answers six
// fixed queries over it:
//
//   - ParticipantsByInstitution: participant totals per institution
//   - ParticipantsByInstitutionSubject: totals per "institution-subject" key
//   - InstructorCourses: independent and co-authored titles per instructor
//   - TopCourses: top-K titles ranked by total hours or participants
//   - SearchCourses: subject substring plus audited/hours thresholds
//   - RecommendCourses: ten titles closest to a demographic profile
//
// Every query scans the whole dataset, builds its own accumulators and
// returns a fresh result. The dataset is never modified after New, so an
// Analyzer may be shared by any number of goroutines without locking.
//
// Example usage:
//
//	a, stats, err := query.Load("courses.csv", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range a.ParticipantsByInstitution() {
//	    fmt.Println(c.Key, c.Value)
//	}
package query
