package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/registry"
)

func searchHit(title, officerID string, month, year int) registry.OfficerSearchHit {
	hit := registry.OfficerSearchHit{
		Title:       title,
		DateOfBirth: registry.DateOfBirth{Month: month, Year: year},
	}
	hit.Links.Self = "/officers/" + officerID
	return hit
}

func TestFindCandidatesIssuesFourQueries(t *testing.T) {
	reg := NewMockRegistry()
	person := &model.Person{Name: "SMITH, John", DOBMonth: 3, DOBYear: 1975}

	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	// First/last tokens of "SMITH, John" are SMITH and JOHN.
	assert.Equal(t, []string{
		"JOHN SMITH",
		"SMITH JOHN",
		"JOHN SMITH",
		"JOHN, SMITH",
	}, reg.SearchQueries)
}

func TestFindCandidatesDeduplicatesAcrossQueries(t *testing.T) {
	reg := NewMockRegistry()
	hit := searchHit("SMITH, John", "xyz789", 3, 1975)
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{hit}
	reg.SearchHits["SMITH JOHN"] = []registry.OfficerSearchHit{hit}
	reg.SearchHits["JOHN, SMITH"] = []registry.OfficerSearchHit{hit}

	person := &model.Person{Name: "SMITH, John", DOBMonth: 3, DOBYear: 1975}
	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	require.Len(t, person.CandidateMatches, 1, "the same officer id must appear once")
	assert.Equal(t, "xyz789", person.CandidateMatches[0].OfficerID)
}

func TestFindCandidatesFiltersByDOB(t *testing.T) {
	reg := NewMockRegistry()
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{
		searchHit("SMITH, John", "match1", 3, 1975),
		searchHit("SMITH, John", "wrongmonth", 4, 1975),
		searchHit("SMITH, John", "wrongyear", 3, 1976),
		searchHit("SMITH, John", "nodob", 0, 0),
	}

	person := &model.Person{Name: "SMITH, John", DOBMonth: 3, DOBYear: 1975}
	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	require.Len(t, person.CandidateMatches, 1)
	assert.Equal(t, "match1", person.CandidateMatches[0].OfficerID)
}

func TestFindCandidatesUnknownDOBMatchesNothing(t *testing.T) {
	reg := NewMockRegistry()
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{
		searchHit("SMITH, John", "xyz789", 3, 1975),
	}

	person := &model.Person{Name: "SMITH, John"}
	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	assert.Empty(t, person.CandidateMatches)
}

func TestFindCandidatesExcludesVerifiedIDs(t *testing.T) {
	reg := NewMockRegistry()
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{
		searchHit("SMITH, John", "abc123", 3, 1975),
		searchHit("SMITH, John", "xyz789", 3, 1975),
	}

	person := &model.Person{
		Name:               "SMITH, John",
		DOBMonth:           3,
		DOBYear:            1975,
		VerifiedOfficerIDs: []string{"abc123"},
	}
	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	require.Len(t, person.CandidateMatches, 1)
	assert.Equal(t, "xyz789", person.CandidateMatches[0].OfficerID)
}

func TestFindCandidatesSkipsUnsearchableNames(t *testing.T) {
	reg := NewMockRegistry()
	person := &model.Person{Name: "MR", DOBMonth: 3, DOBYear: 1975}

	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	assert.Empty(t, reg.SearchQueries, "a name with no usable tokens must not be searched")
	assert.Empty(t, person.CandidateMatches)
}

func TestFindCandidatesScoresInDiscoveryOrder(t *testing.T) {
	reg := NewMockRegistry()
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{
		searchHit("SMITH, John", "first", 3, 1975),
	}
	reg.SearchHits["SMITH JOHN"] = []registry.OfficerSearchHit{
		searchHit("SMYTHE, Jon", "second", 3, 1975),
	}

	person := &model.Person{Name: "SMITH, John", DOBMonth: 3, DOBYear: 1975}
	eng := New(reg, &MockPrompter{})
	require.NoError(t, eng.FindCandidates(context.Background(), []*model.Person{person}))

	require.Len(t, person.CandidateMatches, 2)
	assert.Equal(t, "first", person.CandidateMatches[0].OfficerID)
	assert.Equal(t, "second", person.CandidateMatches[1].OfficerID)
	assert.True(t, person.CandidateMatches[0].Suggested)
	assert.Greater(t, person.CandidateMatches[0].Similarity, person.CandidateMatches[1].Similarity)
}
