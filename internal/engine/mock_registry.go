package engine

import (
	"context"
	"sync"

	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/registry"
)

// MockRegistry is a scriptable in-memory Registry used in tests. All
// lookup tables are keyed by the argument of the corresponding call;
// missing keys behave like absent registry resources.
type MockRegistry struct {
	Profiles     map[string]*registry.CompanyProfile
	OfficerLists map[string][]registry.OfficerItem
	PSCLists     map[string][]registry.PSCItem
	SearchHits   map[string][]registry.OfficerSearchHit
	Histories    map[string][]registry.AppointmentItem
	Insolvencies map[string]bool

	// Err, when set, is returned by every call.
	Err error

	SearchQueries    []string
	InsolvencyCalls  []string
	AppointmentCalls []string
	mu               sync.Mutex
}

// NewMockRegistry creates an empty mock registry.
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{
		Profiles:     make(map[string]*registry.CompanyProfile),
		OfficerLists: make(map[string][]registry.OfficerItem),
		PSCLists:     make(map[string][]registry.PSCItem),
		SearchHits:   make(map[string][]registry.OfficerSearchHit),
		Histories:    make(map[string][]registry.AppointmentItem),
		Insolvencies: make(map[string]bool),
	}
}

// CompanyProfile returns the scripted profile, or absent.
func (m *MockRegistry) CompanyProfile(_ context.Context, companyNumber string) (*registry.CompanyProfile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Profiles[companyNumber], nil
}

// Officers returns the scripted officer list.
func (m *MockRegistry) Officers(_ context.Context, companyNumber string) ([]registry.OfficerItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.OfficerLists[companyNumber], nil
}

// PSCs returns the scripted PSC list.
func (m *MockRegistry) PSCs(_ context.Context, companyNumber string) ([]registry.PSCItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.PSCLists[companyNumber], nil
}

// SearchOfficers records the query and returns the scripted hits.
func (m *MockRegistry) SearchOfficers(_ context.Context, query string) ([]registry.OfficerSearchHit, error) {
	m.mu.Lock()
	m.SearchQueries = append(m.SearchQueries, query)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.SearchHits[query], nil
}

// Appointments records the officer id and returns the scripted history.
func (m *MockRegistry) Appointments(_ context.Context, officerID string) ([]registry.AppointmentItem, error) {
	m.mu.Lock()
	m.AppointmentCalls = append(m.AppointmentCalls, officerID)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Histories[officerID], nil
}

// HasInsolvency records the company number and returns the scripted flag.
func (m *MockRegistry) HasInsolvency(_ context.Context, companyNumber string) (bool, error) {
	m.mu.Lock()
	m.InsolvencyCalls = append(m.InsolvencyCalls, companyNumber)
	m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	return m.Insolvencies[companyNumber], nil
}

// MockPrompter is a test implementation of the Prompter interface. By
// default it adopts each candidate's pre-seeded suggestion, mirroring a
// reviewer who accepts every default.
type MockPrompter struct {
	// Scripted, when non-nil, is returned verbatim.
	Scripted DecisionSet
	// Err, when set, is returned instead of decisions.
	Err error

	ReviewCalls int
}

// ReviewMatches returns scripted decisions, or the suggested defaults.
func (m *MockPrompter) ReviewMatches(_ context.Context, _ *registry.CompanyProfile, people []*model.Person) (DecisionSet, error) {
	m.ReviewCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Scripted != nil {
		return m.Scripted, nil
	}

	decisions := NewDecisionSet()
	for idx, person := range people {
		for _, candidate := range person.CandidateMatches {
			if candidate.Suggested {
				decisions.Set(idx, candidate.OfficerID, DecisionConfirmed)
			} else {
				decisions.Set(idx, candidate.OfficerID, DecisionRejected)
			}
		}
	}
	return decisions, nil
}
