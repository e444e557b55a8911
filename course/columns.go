package course

// ColumnType is the declared type of a dataset column.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInt
	TypeFloat
	TypeDate
)

// String returns the lower-case name of the type.
func (t ColumnType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeDate:
		return "date"
	default:
		return "unknown"
	}
}

// Column describes one positional column of the CSV dataset.
type Column struct {
	Index  int
	Name   string // snake_case name used by Field, the filter and Parquet
	Header string // header text in the published dataset
	Type   ColumnType
	// Quoted columns are free text that may be wrapped in double quotes.
	Quoted bool
}

// Columns lists every dataset column in CSV order.
var Columns = []Column{
	{0, "institution", "Institution", TypeString, false},
	{1, "course_number", "Course Number", TypeString, false},
	{2, "launch_date", "Launch Date", TypeDate, false},
	{3, "course_title", "Course Title", TypeString, true},
	{4, "instructors", "Instructors", TypeString, true},
	{5, "course_subject", "Course Subject", TypeString, true},
	{6, "year", "Year", TypeInt, false},
	{7, "honor_code", "Honor Code Certificates", TypeInt, false},
	{8, "participants", "Participants (Course Content Accessed)", TypeInt, false},
	{9, "audited", "Audited (> 50% Course Content Accessed)", TypeInt, false},
	{10, "certified", "Certified", TypeInt, false},
	{11, "percent_audited", "% Audited", TypeFloat, false},
	{12, "percent_certified", "% Certified", TypeFloat, false},
	{13, "percent_certified_50", "% Certified of > 50% Course Content Accessed", TypeFloat, false},
	{14, "percent_video", "% Played Video", TypeFloat, false},
	{15, "percent_forum", "% Posted in Forum", TypeFloat, false},
	{16, "grade_higher_zero", "% Grade Higher Than Zero", TypeFloat, false},
	{17, "total_hours", "Total Course Hours (Thousands)", TypeFloat, false},
	{18, "median_hours_certification", "Median Hours for Certification", TypeFloat, false},
	{19, "median_age", "Median Age", TypeFloat, false},
	{20, "percent_male", "% Male", TypeFloat, false},
	{21, "percent_female", "% Female", TypeFloat, false},
	{22, "percent_degree", "% Bachelor's Degree or Higher", TypeFloat, false},
}

// NumColumns is the number of fields every CSV row must carry.
const NumColumns = 23

// LookupColumn returns the column with the given snake_case name.
func LookupColumn(name string) (Column, bool) {
	for _, col := range Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the names of all columns in CSV order.
func ColumnNames() []string {
	names := make([]string, len(Columns))
	for i, col := range Columns {
		names[i] = col.Name
	}
	return names
}
