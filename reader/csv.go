package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vegasq/coursecat/course"
	"github.com/vegasq/coursecat/internal/logging"
)

// dateLayouts are tried in order for the launch_date column. "1/2/2006"
// accepts both zero-padded and bare month/day numbers.
var dateLayouts = []string{"1/2/2006", "2006-01-02"}

func (r *Reader) readCSV() ([]course.Course, error) {
	br := bufio.NewReaderSize(r.file, 64*1024)

	var (
		courses []course.Course
		lineNo  int
		header  = true
	)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
		}
		eof := errors.Is(err, io.EOF)
		if line == "" && eof {
			break
		}
		lineNo++

		line = strings.TrimRight(line, "\r\n")
		switch {
		case header:
			header = false
		case strings.TrimSpace(line) == "":
		default:
			c, rowErr := parseCourse(splitFields(line))
			if rowErr != nil {
				rowErr.Path = r.path
				rowErr.Line = lineNo
				if !r.opts.SkipMalformed {
					return nil, rowErr
				}
				r.stats.Skipped++
				logging.Warn().Err(rowErr).Msg("skipping malformed row")
			} else {
				courses = append(courses, c)
			}
		}

		if eof {
			break
		}
	}

	return courses, nil
}

// splitFields splits a line on commas that are not inside double quotes.
// Quote characters are kept in the returned fields.
func splitFields(line string) []string {
	fields := make([]string, 0, course.NumColumns)
	inQuotes := false
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, line[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, line[start:])
}

// stripQuotes removes a single leading and a single trailing double quote.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func parseCourse(fields []string) (course.Course, *RowError) {
	if len(fields) != course.NumColumns {
		return course.Course{}, &RowError{
			Err: fmt.Errorf("expected %d fields, got %d", course.NumColumns, len(fields)),
		}
	}

	p := fieldParser{fields: fields}
	c := course.Course{
		Institution:              fields[0],
		Number:                   fields[1],
		LaunchDate:               p.date(2),
		Title:                    stripQuotes(fields[3]),
		Instructors:              stripQuotes(fields[4]),
		Subject:                  stripQuotes(fields[5]),
		Year:                     p.int(6),
		HonorCode:                p.int(7),
		Participants:             p.int(8),
		Audited:                  p.int(9),
		Certified:                p.int(10),
		PercentAudited:           p.float(11),
		PercentCertified:         p.float(12),
		PercentCertified50:       p.float(13),
		PercentVideo:             p.float(14),
		PercentForum:             p.float(15),
		GradeHigherZero:          p.float(16),
		TotalHours:               p.float(17),
		MedianHoursCertification: p.float(18),
		MedianAge:                p.float(19),
		PercentMale:              p.float(20),
		PercentFemale:            p.float(21),
		PercentDegree:            p.float(22),
	}
	if p.err != nil {
		return course.Course{}, p.err
	}
	return c, nil
}

// fieldParser converts typed columns and keeps the first failure.
type fieldParser struct {
	fields []string
	err    *RowError
}

func (p *fieldParser) fail(i int, err error) {
	if p.err == nil {
		p.err = &RowError{Column: course.Columns[i].Name, Err: err}
	}
}

func (p *fieldParser) int(i int) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(p.fields[i]), 10, 64)
	if err != nil {
		p.fail(i, err)
	}
	return v
}

func (p *fieldParser) float(i int) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.fields[i]), 64)
	if err != nil {
		p.fail(i, err)
	}
	return v
}

func (p *fieldParser) date(i int) time.Time {
	raw := strings.TrimSpace(p.fields[i])
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	p.fail(i, fmt.Errorf("invalid date %q", raw))
	return time.Time{}
}
