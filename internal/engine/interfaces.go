package engine

import (
	"context"

	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/registry"
)

// Registry defines the contract for the company-registry accessor. All
// methods treat a missing resource as empty output rather than an error;
// the only errors crossing this boundary are exhausted rate-limit retries
// and context cancellation.
type Registry interface {
	CompanyProfile(ctx context.Context, companyNumber string) (*registry.CompanyProfile, error)
	Officers(ctx context.Context, companyNumber string) ([]registry.OfficerItem, error)
	PSCs(ctx context.Context, companyNumber string) ([]registry.PSCItem, error)
	SearchOfficers(ctx context.Context, query string) ([]registry.OfficerSearchHit, error)
	Appointments(ctx context.Context, officerID string) ([]registry.AppointmentItem, error)
	HasInsolvency(ctx context.Context, companyNumber string) (bool, error)
}

// Prompter defines the contract for the human-review step. The
// implementation displays each person's candidate matches, pre-seeded
// with the scorer's suggestion, and collects binary confirm/reject
// decisions.
type Prompter interface {
	ReviewMatches(ctx context.Context, company *registry.CompanyProfile, people []*model.Person) (DecisionSet, error)
}

// ProgressFunc reports progress of the per-company insolvency lookups,
// the dominant latency cost of a resolution.
type ProgressFunc func(done, total int)
