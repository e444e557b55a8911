package main

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// fixture returns the absolute path of the shared CSV dataset.
func fixture(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "testdata", "courses.csv"))
	if err != nil {
		t.Fatalf("failed to resolve fixture: %v", err)
	}
	return path
}

// run executes the command tree in-process, isolated from any config file
// on the machine, and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("COURSECAT_CONFIG", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func csvRecords(t *testing.T, out string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not CSV: %v\n%s", err, out)
	}
	return records
}

func TestCommands_CSV(t *testing.T) {
	data := fixture(t)

	tests := []struct {
		name string
		args []string
		want [][]string
	}{
		{
			name: "institutions",
			args: []string{"institutions"},
			want: [][]string{
				{"institution", "participants"},
				{"HarvardX", "344583"},
				{"MITx", "209248"},
			},
		},
		{
			name: "institutions with where",
			args: []string{"-w", "institution = 'MITx' and year = 1", "institutions"},
			want: [][]string{
				{"institution", "participants"},
				{"MITx", "140198"},
			},
		},
		{
			name: "top by hours",
			args: []string{"top", "--k", "3", "--by", "hours"},
			want: [][]string{
				{"rank", "title"},
				{"1", "Introduction to Computer Science I"},
				{"2", "Health in Numbers: Quantitative Methods in Clinical & Public Health Research"},
				{"3", "Introduction to Computer Science and Programming"},
			},
		},
		{
			name: "top deduplicates",
			args: []string{"top", "--k", "2"},
			want: [][]string{
				{"rank", "title"},
				{"1", "Introduction to Computer Science I"},
				{"2", "Justice"},
			},
		},
		{
			name: "search",
			args: []string{"search", "--subject", "COMPUTER", "--min-audited", "14", "--max-hours", "900"},
			want: [][]string{
				{"rank", "title"},
				{"1", "Introduction to Computer Science and Programming"},
				{"2", "Introduction to Computer Science and Programming Using Python"},
			},
		},
		{
			name: "subjects head",
			args: []string{"subjects"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-d", data, "-f", "csv"}, tt.args...)
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("Execute(%v) error = %v", tt.args, err)
			}
			got := csvRecords(t, out)
			if tt.want == nil {
				if len(got) < 2 || got[1][0] != "HarvardX-Computer Science" || got[1][1] != "181410" {
					t.Errorf("unexpected first subject row: %v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Execute(%v) =\n%v\nwant\n%v", tt.args, got, tt.want)
			}
		})
	}
}

func TestInstructors_JSON(t *testing.T) {
	out, err := run(t, "-d", fixture(t), "-f", "json", "instructors", "Michael Sandel", "John Guttag", "Nobody")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var rows []struct {
		Instructor  string   `json:"instructor"`
		Independent []string `json:"independent"`
		CoAuthored  []string `json:"co_authored"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %s", len(rows), out)
	}

	if rows[0].Instructor != "John Guttag" || len(rows[0].Independent) != 0 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	wantCo := []string{
		"Introduction to Computer Science and Programming",
		"Introduction to Computer Science and Programming Using Python",
	}
	if !reflect.DeepEqual(rows[0].CoAuthored, wantCo) {
		t.Errorf("John Guttag co-authored = %v, want %v", rows[0].CoAuthored, wantCo)
	}
	if rows[1].Instructor != "Michael Sandel" || !reflect.DeepEqual(rows[1].Independent, []string{"Justice"}) {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestRecommend(t *testing.T) {
	out, err := run(t, "-d", fixture(t), "-f", "jsonl", "recommend", "--age", "30", "--gender", "0", "--degree", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 8 {
		t.Errorf("got %d recommendations, want one per course number (8):\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Human Health and Global Environmental Change") {
		t.Errorf("first recommendation = %s", lines[0])
	}
}

func TestConvertRoundTrip(t *testing.T) {
	data := fixture(t)
	dest := filepath.Join(t.TempDir(), "courses.parquet")

	out, err := run(t, "-d", data, "convert", "--out", dest, "--codec", "zstd")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if !strings.Contains(out, "wrote 10 rows") {
		t.Errorf("convert output = %q", out)
	}

	out, err = run(t, "-d", dest, "-f", "csv", "institutions")
	if err != nil {
		t.Fatalf("institutions on parquet error = %v", err)
	}
	want := [][]string{{"institution", "participants"}, {"HarvardX", "344583"}, {"MITx", "209248"}}
	if got := csvRecords(t, out); !reflect.DeepEqual(got, want) {
		t.Errorf("institutions on parquet = %v, want %v", got, want)
	}

	out, err = run(t, "-d", dest, "-f", "csv", "schema")
	if err != nil {
		t.Fatalf("schema on parquet error = %v", err)
	}
	if got := csvRecords(t, out); len(got) != 24 {
		t.Errorf("schema listed %d lines, want header + 23", len(got))
	}
}

func TestSchema_CSV(t *testing.T) {
	out, err := run(t, "-d", fixture(t), "-f", "csv", "schema")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	records := csvRecords(t, out)
	if len(records) != 24 || records[1][0] != "institution" || records[23][0] != "percent_degree" {
		t.Errorf("schema = %v", records)
	}
}

func TestTableOutputIsDefault(t *testing.T) {
	out, err := run(t, "-d", fixture(t), "institutions")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "HarvardX") || !strings.Contains(out, "+") {
		t.Errorf("expected a text table, got:\n%s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	data := fixture(t)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"no dataset", []string{"institutions"}, "no dataset"},
		{"missing dataset", []string{"-d", filepath.Join(t.TempDir(), "nope.csv"), "institutions"}, "no such file"},
		{"bad format", []string{"-d", data, "-f", "xml", "institutions"}, "output.format"},
		{"bad where", []string{"-d", data, "-w", "colour = 'red'", "institutions"}, "unknown column"},
		{"bad gender", []string{"-d", data, "recommend", "--age", "30", "--gender", "2"}, "gender must be one of: 0 1"},
		{"bad codec", []string{"-d", data, "convert", "--out", filepath.Join(t.TempDir(), "x.parquet"), "--codec", "lzo"}, "unsupported compression codec"},
		{"convert without out", []string{"-d", data, "convert"}, "--out is required"},
		{"unexpected args", []string{"-d", data, "top", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatalf("Execute(%v) should fail", tt.args)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Execute(%v) error = %q, want it to contain %q", tt.args, err, tt.wantMsg)
			}
		})
	}
}

func TestRows(t *testing.T) {
	out, err := run(t, "-d", fixture(t), "-f", "jsonl", "-w", "course_number = 'ER22x'", "rows", "--limit", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d rows, want 1:\n%s", len(lines), out)
	}

	var row map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &row); err != nil {
		t.Fatalf("row is not JSON: %v", err)
	}
	if row["course_title"] != "Justice" || row["participants"] != float64(79750) {
		t.Errorf("row = %v", row)
	}
}
