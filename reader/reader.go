package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/coursecat/course"
	"github.com/vegasq/coursecat/internal/logging"
)

// Format identifies the on-disk encoding of a dataset.
type Format int

const (
	FormatCSV Format = iota
	FormatParquet
)

func (f Format) String() string {
	if f == FormatParquet {
		return "parquet"
	}
	return "csv"
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return FormatParquet
	}
	return FormatCSV
}

// Options control how rows are ingested.
type Options struct {
	// SkipMalformed logs and skips bad CSV rows instead of failing the load.
	SkipMalformed bool
}

// Stats summarises a completed read.
type Stats struct {
	Files   int
	Rows    int
	Skipped int
}

func (s *Stats) add(o Stats) {
	s.Files += o.Files
	s.Rows += o.Rows
	s.Skipped += o.Skipped
}

// Reader reads one dataset file.
type Reader struct {
	path   string
	format Format
	opts   Options
	file   *os.File
	pqFile *parquet.File
	stats  Stats
}

// NewReader opens the dataset at path. Parquet files are validated on open.
//
// A missing file yields an error for which errors.Is(err, fs.ErrNotExist)
// holds.
func NewReader(path string, opts Options) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	r := &Reader{
		path:   path,
		format: DetectFormat(path),
		opts:   opts,
		file:   file,
	}

	if r.format == FormatParquet {
		stat, err := file.Stat()
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		pqFile, err := parquet.OpenFile(file, stat.Size())
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open parquet file: %w", err)
		}
		r.pqFile = pqFile
	}

	return r, nil
}

// Format returns the detected dataset format.
func (r *Reader) Format() Format {
	return r.format
}

// ReadAll reads every course of the file into memory, in file order.
func (r *Reader) ReadAll() ([]course.Course, error) {
	start := time.Now()

	var (
		courses []course.Course
		err     error
	)
	switch r.format {
	case FormatParquet:
		courses, err = r.readParquet()
	default:
		courses, err = r.readCSV()
	}
	if err != nil {
		return nil, err
	}

	r.stats.Files = 1
	r.stats.Rows = len(courses)

	logging.Debug().
		Str("path", r.path).
		Str("format", r.format.String()).
		Int("rows", r.stats.Rows).
		Int("skipped", r.stats.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("dataset file read")

	return courses, nil
}

// Stats returns counters for the last ReadAll.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Close releases the file handle. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadMultipleFiles reads all courses from the files matching pattern.
//
// A pattern without glob metacharacters is read as a single file. Otherwise
// every match is read in lexical order and the rows are concatenated.
func ReadMultipleFiles(pattern string, opts Options) ([]course.Course, Stats, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		courses, stats, err := readFile(pattern, opts)
		return courses, stats, err
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, Stats{}, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}

	// Limit number of files to prevent resource exhaustion
	const maxFiles = 1000
	if len(matches) > maxFiles {
		return nil, Stats{}, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}
	sort.Strings(matches)

	var (
		all   []course.Course
		total Stats
	)
	for _, path := range matches {
		courses, stats, err := readFile(path, opts)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		all = append(all, courses...)
		total.add(stats)
	}

	return all, total, nil
}

func readFile(path string, opts Options) ([]course.Course, Stats, error) {
	r, err := NewReader(path, opts)
	if err != nil {
		return nil, Stats{}, err
	}

	courses, readErr := r.ReadAll()
	closeErr := r.Close()

	// Preserve the first error encountered
	if readErr != nil {
		return nil, Stats{}, readErr
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return nil, Stats{}, fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	return courses, r.Stats(), nil
}
