package course

import "time"

// Course is a single offering of an online course.
type Course struct {
	Institution string    `json:"institution" parquet:"institution"`
	Number      string    `json:"course_number" parquet:"course_number"`
	LaunchDate  time.Time `json:"launch_date" parquet:"launch_date"`
	Title       string    `json:"course_title" parquet:"course_title"`
	Instructors string    `json:"instructors" parquet:"instructors"`
	Subject     string    `json:"course_subject" parquet:"course_subject"`
	Year        int64     `json:"year" parquet:"year"`
	HonorCode   int64     `json:"honor_code" parquet:"honor_code"`

	Participants int64 `json:"participants" parquet:"participants"`
	Audited      int64 `json:"audited" parquet:"audited"`
	Certified    int64 `json:"certified" parquet:"certified"`

	PercentAudited     float64 `json:"percent_audited" parquet:"percent_audited"`
	PercentCertified   float64 `json:"percent_certified" parquet:"percent_certified"`
	PercentCertified50 float64 `json:"percent_certified_50" parquet:"percent_certified_50"`
	PercentVideo       float64 `json:"percent_video" parquet:"percent_video"`
	PercentForum       float64 `json:"percent_forum" parquet:"percent_forum"`
	GradeHigherZero    float64 `json:"grade_higher_zero" parquet:"grade_higher_zero"`

	// TotalHours is expressed in thousands of hours, as in the source dataset.
	TotalHours               float64 `json:"total_hours" parquet:"total_hours"`
	MedianHoursCertification float64 `json:"median_hours_certification" parquet:"median_hours_certification"`
	MedianAge                float64 `json:"median_age" parquet:"median_age"`
	PercentMale              float64 `json:"percent_male" parquet:"percent_male"`
	PercentFemale            float64 `json:"percent_female" parquet:"percent_female"`
	PercentDegree            float64 `json:"percent_degree" parquet:"percent_degree"`
}

// Field returns the value of the named column. The second result is false
// for names that are not in Columns.
//
// Integer columns are returned as int64, percentages and hours as float64,
// text as string and launch_date as time.Time.
func (c *Course) Field(name string) (interface{}, bool) {
	switch name {
	case "institution":
		return c.Institution, true
	case "course_number":
		return c.Number, true
	case "launch_date":
		return c.LaunchDate, true
	case "course_title":
		return c.Title, true
	case "instructors":
		return c.Instructors, true
	case "course_subject":
		return c.Subject, true
	case "year":
		return c.Year, true
	case "honor_code":
		return c.HonorCode, true
	case "participants":
		return c.Participants, true
	case "audited":
		return c.Audited, true
	case "certified":
		return c.Certified, true
	case "percent_audited":
		return c.PercentAudited, true
	case "percent_certified":
		return c.PercentCertified, true
	case "percent_certified_50":
		return c.PercentCertified50, true
	case "percent_video":
		return c.PercentVideo, true
	case "percent_forum":
		return c.PercentForum, true
	case "grade_higher_zero":
		return c.GradeHigherZero, true
	case "total_hours":
		return c.TotalHours, true
	case "median_hours_certification":
		return c.MedianHoursCertification, true
	case "median_age":
		return c.MedianAge, true
	case "percent_male":
		return c.PercentMale, true
	case "percent_female":
		return c.PercentFemale, true
	case "percent_degree":
		return c.PercentDegree, true
	default:
		return nil, false
	}
}
