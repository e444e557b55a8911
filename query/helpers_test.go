package query

import (
	"time"

	"github.com/vegasq/coursecat/course"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// sampleCourses mirrors a slice of the HarvardX/MITx dataset with a few
// crafted ties.
func sampleCourses() []course.Course {
	return []course.Course{
		{Institution: "MITx", Number: "6.002x", LaunchDate: date(2012, 9, 5), Title: "Circuits and Electronics", Instructors: "Khurram Afridi", Subject: "Science, Technology, Engineering, and Mathematics", Participants: 36105, PercentAudited: 54.98, TotalHours: 418.94, MedianAge: 26, PercentMale: 88.28, PercentDegree: 60.68},
		{Institution: "MITx", Number: "6.00x", LaunchDate: date(2012, 9, 26), Title: "Introduction to Computer Science and Programming", Instructors: "Eric Grimson, John Guttag, Chris Terman", Subject: "Computer Science", Participants: 62709, PercentAudited: 15.04, TotalHours: 884.04, MedianAge: 26, PercentMale: 83.5, PercentDegree: 63.04},
		{Institution: "HarvardX", Number: "PH207x", LaunchDate: date(2012, 10, 15), Title: "Health in Numbers: Quantitative Methods in Clinical & Public Health Research", Instructors: "Earl Francis Cook, Marcello Pagano", Subject: "Government, Health, and Social Science", Participants: 61280, PercentAudited: 22.55, TotalHours: 1077.58, MedianAge: 30, PercentMale: 61.05, PercentDegree: 88.94},
		{Institution: "HarvardX", Number: "CS50x", LaunchDate: date(2012, 10, 15), Title: "Introduction to Computer Science I", Instructors: "David Malan", Subject: "Computer Science", Participants: 181410, PercentAudited: 11.47, TotalHours: 5302.2, MedianAge: 27, PercentMale: 80.46, PercentDegree: 55.89},
		{Institution: "MITx", Number: "6.00x", LaunchDate: date(2013, 9, 26), Title: "Introduction to Computer Science and Programming Using Python", Instructors: "Eric Grimson, John Guttag", Subject: "Computer Science", Participants: 31048, PercentAudited: 21.09, TotalHours: 544.32, MedianAge: 26, PercentMale: 81.36, PercentDegree: 60.12},
		{Institution: "HarvardX", Number: "ER22x", LaunchDate: date(2013, 3, 2), Title: "Justice", Instructors: "Michael Sandel", Subject: "Humanities, History, Design, Religion, and Education", Participants: 79750, PercentAudited: 22.18, TotalHours: 452.4, MedianAge: 30, PercentMale: 59.36, PercentDegree: 72.42},
		{Institution: "HarvardX", Number: "ER22x", LaunchDate: date(2014, 3, 2), Title: "Justice", Instructors: "Michael Sandel", Subject: "Humanities, History, Design, Religion, and Education", Participants: 12000, PercentAudited: 30.5, TotalHours: 99.5, MedianAge: 32, PercentMale: 55.1, PercentDegree: 70.2},
	}
}
