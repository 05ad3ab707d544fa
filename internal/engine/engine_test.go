package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calhoward/officertrail/internal/common"
	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/registry"
)

func TestResolveCompanyNotFound(t *testing.T) {
	reg := NewMockRegistry()
	eng := New(reg, &MockPrompter{})

	_, err := eng.Resolve(context.Background(), "99999999")
	assert.ErrorIs(t, err, common.ErrCompanyNotFound)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "99999999")
}

func TestResolveNoCurrentPersons(t *testing.T) {
	reg := NewMockRegistry()
	reg.Profiles["12345678"] = &registry.CompanyProfile{
		CompanyName:   "EMPTY LTD",
		CompanyNumber: "12345678",
		CompanyStatus: "active",
	}

	eng := New(reg, &MockPrompter{})
	_, err := eng.Resolve(context.Background(), "12345678")
	assert.ErrorIs(t, err, common.ErrNoCurrentPersons)
}

func TestResolveNormalizesCompanyNumber(t *testing.T) {
	reg := NewMockRegistry()
	eng := New(reg, &MockPrompter{})

	_, err := eng.Resolve(context.Background(), "  sc123456 ")
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "SC123456")
}

func TestApplyDecisions(t *testing.T) {
	people := []*model.Person{
		{
			Name:               "SMITH, John",
			VerifiedOfficerIDs: []string{"abc123"},
			CandidateMatches: []model.CandidateMatch{
				{OfficerID: "xyz789"},
				{OfficerID: "rejected1"},
				{OfficerID: "abc123"}, // already verified
			},
		},
		{
			Name: "DOE, Jane",
			CandidateMatches: []model.CandidateMatch{
				{OfficerID: "jane1"},
			},
		},
	}

	decisions := NewDecisionSet()
	decisions.Set(0, "xyz789", DecisionConfirmed)
	decisions.Set(0, "rejected1", DecisionRejected)
	decisions.Set(0, "abc123", DecisionConfirmed)
	decisions.Set(1, "jane1", DecisionConfirmed)

	ApplyDecisions(people, decisions)

	assert.Equal(t, []string{"abc123", "xyz789"}, people[0].VerifiedOfficerIDs)
	assert.Equal(t, []string{"jane1"}, people[1].VerifiedOfficerIDs)
}

func TestDecisionSetIdempotentUpdates(t *testing.T) {
	decisions := NewDecisionSet()
	decisions.Set(0, "xyz789", DecisionRejected)
	decisions.Set(0, "xyz789", DecisionConfirmed)
	decisions.Set(0, "xyz789", DecisionConfirmed)

	assert.True(t, decisions.IsConfirmed(0, "xyz789"), "the latest verdict wins")
	assert.False(t, decisions.IsConfirmed(0, "unknown"))
	assert.False(t, decisions.IsConfirmed(5, "xyz789"))
}

// Full pipeline: one director with one confirmed duplicate identity whose
// merged histories categorize into active and dissolved-with-insolvency.
func TestResolveEndToEnd(t *testing.T) {
	reg := NewMockRegistry()
	reg.Profiles["12345678"] = &registry.CompanyProfile{
		CompanyName:   "ACME HOLDINGS LTD",
		CompanyNumber: "12345678",
		CompanyStatus: "active",
	}
	reg.OfficerLists["12345678"] = []registry.OfficerItem{
		officerItem("SMITH, John", 3, 1975, "abc123", ""),
	}
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{
		searchHit("John Smith", "xyz789", 3, 1975),
	}
	reg.Histories["abc123"] = []registry.AppointmentItem{
		appointment("111", "AcmeCo", "active", ""),
	}
	reg.Histories["xyz789"] = []registry.AppointmentItem{
		appointment("222", "OldCo", "dissolved", ""),
	}
	reg.Insolvencies["222"] = true

	prompter := &MockPrompter{} // adopts suggestions; 1.0 similarity pre-confirms
	eng := New(reg, prompter)

	result, err := eng.Resolve(context.Background(), "12345678")
	require.NoError(t, err)
	require.Len(t, result.People, 1)
	assert.Equal(t, 1, prompter.ReviewCalls)

	person := result.People[0].Person
	require.Len(t, person.CandidateMatches, 1)
	assert.Equal(t, model.ConfidenceVeryHigh, person.CandidateMatches[0].Confidence)
	assert.True(t, person.CandidateMatches[0].Suggested)
	assert.Equal(t, []string{"abc123", "xyz789"}, person.VerifiedOfficerIDs)

	footprint := result.People[0].Footprint
	assert.Equal(t, []string{"AcmeCo (111)"}, footprint.Active)
	assert.Equal(t, []string{"OldCo (222) [Insolvency history]"}, footprint.Dissolved)
	assert.Empty(t, footprint.Involuntary)
	assert.Empty(t, footprint.Resigned)
}

func TestResolveRejectedCandidateStaysOut(t *testing.T) {
	reg := NewMockRegistry()
	reg.Profiles["12345678"] = &registry.CompanyProfile{
		CompanyName:   "ACME HOLDINGS LTD",
		CompanyNumber: "12345678",
		CompanyStatus: "active",
	}
	reg.OfficerLists["12345678"] = []registry.OfficerItem{
		officerItem("SMITH, John", 3, 1975, "abc123", ""),
	}
	reg.SearchHits["JOHN SMITH"] = []registry.OfficerSearchHit{
		searchHit("John Smith", "xyz789", 3, 1975),
	}
	reg.Histories["abc123"] = []registry.AppointmentItem{
		appointment("111", "AcmeCo", "active", ""),
	}
	reg.Histories["xyz789"] = []registry.AppointmentItem{
		appointment("222", "OldCo", "dissolved", ""),
	}

	scripted := NewDecisionSet()
	scripted.Set(0, "xyz789", DecisionRejected)
	eng := New(reg, &MockPrompter{Scripted: scripted})

	result, err := eng.Resolve(context.Background(), "12345678")
	require.NoError(t, err)

	person := result.People[0].Person
	assert.Equal(t, []string{"abc123"}, person.VerifiedOfficerIDs)
	assert.Empty(t, result.People[0].Footprint.Dissolved,
		"a rejected identity's appointments must not be merged")
}

func TestResolveDegradesOnRegistryFailures(t *testing.T) {
	reg := NewMockRegistry()
	reg.Profiles["12345678"] = &registry.CompanyProfile{
		CompanyName:   "ACME HOLDINGS LTD",
		CompanyNumber: "12345678",
		CompanyStatus: "active",
	}
	reg.OfficerLists["12345678"] = []registry.OfficerItem{
		officerItem("SMITH, John", 3, 1975, "abc123", ""),
	}

	eng := New(reg, &MockPrompter{})

	// Search and histories are empty rather than failing; the run still
	// completes with an empty footprint.
	result, err := eng.Resolve(context.Background(), "12345678")
	require.NoError(t, err)
	require.Len(t, result.People, 1)
	assert.Equal(t, 0, result.People[0].Footprint.Total())
}

func TestResolveCanceledContext(t *testing.T) {
	reg := NewMockRegistry()
	reg.Err = context.Canceled

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(reg, &MockPrompter{})
	_, err := eng.Resolve(ctx, "12345678")
	assert.ErrorIs(t, err, context.Canceled)
}
