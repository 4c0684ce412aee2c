package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/empdash/internal/roster"
)

func directory() []roster.Record {
	return []roster.Record{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Gender: roster.GenderFemale, Salary: 50000},
		{ID: 2, FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Gender: roster.GenderMale, Salary: 70000},
		{ID: 3, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Gender: roster.GenderFemale, Salary: 50000},
		{ID: 4, FirstName: "Linus", LastName: "Torvalds", Email: "linus@example.com", Gender: roster.GenderMale, Salary: 90000},
		{ID: 5, FirstName: "Barbara", LastName: "Liskov", Email: "barbara@example.com", Gender: roster.GenderFemale, Salary: 85000},
		{ID: 6, FirstName: "Dennis", LastName: "Ritchie", Email: "dennis@example.com", Gender: roster.GenderMale, Salary: 65000},
		{ID: 7, FirstName: "Margaret", LastName: "Hamilton", Email: "margaret@example.com", Gender: roster.GenderFemale, Salary: 95000},
		{ID: 8, FirstName: "Ken", LastName: "Thompson", Email: "ken@example.com", Gender: roster.GenderMale, Salary: 65000},
		{ID: 9, FirstName: "Radia", LastName: "Perlman", Email: "radia@example.com", Gender: roster.GenderFemale, Salary: 72000},
		{ID: 10, FirstName: "Donald", LastName: "Knuth", Email: "don@example.com", Gender: roster.GenderMale, Salary: 88000},
	}
}

func recordIDs(records []roster.Record) []roster.ID {
	ids := make([]roster.ID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []roster.ID
	}{
		{name: "first name", query: "ada", want: []roster.ID{1}},
		{name: "last name", query: "TUR", want: []roster.ID{2}},
		{name: "either field", query: "li", want: []roster.ID{4, 5}},
		{name: "substring in middle", query: "rac", want: []roster.ID{3}},
		{name: "no match", query: "zzz", want: []roster.ID{}},
		{name: "email is not searched", query: "example", want: []roster.ID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(directory(), tt.query)
			assert.Equal(t, tt.want, recordIDs(got))
		})
	}
}

func TestSearch_EmptyQueryIsIdentity(t *testing.T) {
	records := directory()
	got := Search(records, "")
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("Search(records, \"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_SubsetAndContainment(t *testing.T) {
	records := directory()
	byID := map[roster.ID]roster.Record{}
	for _, r := range records {
		byID[r.ID] = r
	}

	for _, q := range []string{"a", "AR", "on", "k", "x", "e"} {
		got := Search(records, q)
		assert.LessOrEqual(t, len(got), len(records))
		for _, r := range got {
			orig, ok := byID[r.ID]
			assert.True(t, ok, "result %d not in input", r.ID)
			assert.Equal(t, orig, r)
			lq := strings.ToLower(q)
			assert.True(t,
				strings.Contains(strings.ToLower(r.FirstName), lq) ||
					strings.Contains(strings.ToLower(r.LastName), lq),
				"record %d does not contain %q", r.ID, q)
		}
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	records := directory()
	before := directory()
	got := Search(records, "a")
	if len(got) > 0 {
		got[0].FirstName = "mutated"
	}
	assert.Equal(t, before, records)
}

func TestSearch_EmptyFieldsDoNotMatch(t *testing.T) {
	records := []roster.Record{{ID: 1}, {ID: 2, FirstName: "Zed"}}
	assert.Equal(t, []roster.ID{2}, recordIDs(Search(records, "z")))
	assert.Equal(t, []roster.ID{1, 2}, recordIDs(Search(records, "")))
}
