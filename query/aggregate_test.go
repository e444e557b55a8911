package query

import (
	"reflect"
	"testing"

	"github.com/vegasq/coursecat/course"
)

func TestParticipantsByInstitution_Example(t *testing.T) {
	a := New([]course.Course{
		{Institution: "MIT", Subject: "CS", Participants: 100},
		{Institution: "MIT", Subject: "Bio", Participants: 50},
	})

	got := a.ParticipantsByInstitution()
	want := Counts{{Key: "MIT", Value: 150}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParticipantsByInstitution() = %v, want %v", got, want)
	}
}

func TestParticipantsByInstitution_SortedSums(t *testing.T) {
	a := New(sampleCourses())

	got := a.ParticipantsByInstitution()
	want := Counts{
		{Key: "HarvardX", Value: 61280 + 181410 + 79750 + 12000},
		{Key: "MITx", Value: 36105 + 62709 + 31048},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParticipantsByInstitution() = %v, want %v", got, want)
	}

	// Keys are exactly the distinct institutions and each total is the sum
	// over that institution's rows.
	sums := make(map[string]int64)
	for _, c := range sampleCourses() {
		sums[c.Institution] += c.Participants
	}
	if len(got) != len(sums) {
		t.Fatalf("got %d keys, want %d", len(got), len(sums))
	}
	for i, c := range got {
		if sums[c.Key] != c.Value {
			t.Errorf("%s = %d, want %d", c.Key, c.Value, sums[c.Key])
		}
		if i > 0 && got[i-1].Key >= c.Key {
			t.Errorf("keys out of order: %q before %q", got[i-1].Key, c.Key)
		}
	}
}

func TestParticipantsByInstitutionSubject_Ordering(t *testing.T) {
	a := New([]course.Course{
		{Institution: "MITx", Subject: "Physics", Participants: 10},
		{Institution: "HarvardX", Subject: "Law", Participants: 30},
		{Institution: "MITx", Subject: "Biology", Participants: 20},
		{Institution: "MITx", Subject: "Physics", Participants: 20},
		{Institution: "HarvardX", Subject: "Art", Participants: 30},
		{Institution: "HarvardX", Subject: "Law", Participants: 0},
	})

	got := a.ParticipantsByInstitutionSubject()
	want := Counts{
		{Key: "HarvardX-Art", Value: 30},
		{Key: "HarvardX-Law", Value: 30},
		{Key: "MITx-Physics", Value: 30},
		{Key: "MITx-Biology", Value: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParticipantsByInstitutionSubject() = %v, want %v", got, want)
	}
}

func TestParticipantsByInstitutionSubject_PairwiseOrder(t *testing.T) {
	got := New(sampleCourses()).ParticipantsByInstitutionSubject()
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Value < cur.Value {
			t.Errorf("%v precedes larger %v", prev, cur)
		}
		if prev.Value == cur.Value && prev.Key > cur.Key {
			t.Errorf("tie %v precedes smaller key %v", prev, cur)
		}
	}

	if v, ok := got.Get("HarvardX-Computer Science"); !ok || v != 181410 {
		t.Errorf("Get(HarvardX-Computer Science) = %d, %v", v, ok)
	}
	if got.Keys()[0] != "HarvardX-Computer Science" {
		t.Errorf("first key = %q", got.Keys()[0])
	}
}

func TestCounts_GetMissing(t *testing.T) {
	if _, ok := (Counts{}).Get("nope"); ok {
		t.Error("Get() on empty Counts reported a hit")
	}
}

func TestParticipants_EmptyDataset(t *testing.T) {
	a := New(nil)
	if got := a.ParticipantsByInstitution(); len(got) != 0 {
		t.Errorf("ParticipantsByInstitution() = %v, want empty", got)
	}
	if got := a.ParticipantsByInstitutionSubject(); len(got) != 0 {
		t.Errorf("ParticipantsByInstitutionSubject() = %v, want empty", got)
	}
}
