// Package engine implements the identity-resolution and
// appointment-aggregation pipeline: aggregate a company's current
// directors and PSCs, find candidate duplicate officer records, collect
// human same-person decisions, then merge and categorize every
// appointment of each confirmed identity set.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/calhoward/officertrail/internal/common"
	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/registry"
)

// Engine orchestrates one resolution run. It holds no state across runs;
// every resolution is request-scoped.
type Engine struct {
	registry Registry
	prompter Prompter
	progress ProgressFunc
}

// New creates an engine with the given dependencies.
func New(reg Registry, prompter Prompter) *Engine {
	return &Engine{
		registry: reg,
		prompter: prompter,
	}
}

// WithProgress attaches a progress hook for the insolvency-lookup phase.
func (e *Engine) WithProgress(progress ProgressFunc) *Engine {
	e.progress = progress
	return e
}

// Result is the outcome of one resolution run.
type Result struct {
	Company *registry.CompanyProfile
	People  []PersonResult
}

// PersonResult pairs a resolved person with their categorized footprint.
type PersonResult struct {
	Person    *model.Person
	Footprint *model.Footprint
}

// Resolve runs the full pipeline for one company number. It fails only
// when the company does not exist, when no current directors or PSCs are
// found, or when the context is canceled; every other external failure
// degrades to partial results.
func (e *Engine) Resolve(ctx context.Context, companyNumber string) (*Result, error) {
	companyNumber = strings.ToUpper(strings.TrimSpace(companyNumber))

	company, err := e.LookupCompany(ctx, companyNumber)
	if err != nil {
		return nil, err
	}

	people, err := e.BuildRoster(ctx, companyNumber)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, common.NewUserError("no current directors or PSCs found", common.ErrNoCurrentPersons)
	}

	if err := e.FindCandidates(ctx, people); err != nil {
		return nil, err
	}

	decisions, err := e.prompter.ReviewMatches(ctx, company, people)
	if err != nil {
		return nil, err
	}
	ApplyDecisions(people, decisions)

	result := &Result{Company: company}
	for _, person := range people {
		footprint, err := e.Footprint(ctx, person)
		if err != nil {
			return nil, err
		}
		result.People = append(result.People, PersonResult{
			Person:    person,
			Footprint: footprint,
		})
	}

	return result, nil
}

// LookupCompany fetches the company profile, translating absence into the
// single entry-point failure the pipeline surfaces to the user.
func (e *Engine) LookupCompany(ctx context.Context, companyNumber string) (*registry.CompanyProfile, error) {
	company, err := e.registry.CompanyProfile(ctx, companyNumber)
	if err := e.degrade(ctx, err, "Company lookup unavailable", companyNumber); err != nil {
		return nil, err
	}
	if company == nil {
		return nil, common.NewUserError("company "+companyNumber+" not found", common.ErrCompanyNotFound)
	}
	return company, nil
}

// ApplyDecisions extends each person's verified officer ids with their
// confirmed candidates, in candidate discovery order.
func ApplyDecisions(people []*model.Person, decisions DecisionSet) {
	for idx, person := range people {
		for _, candidate := range person.CandidateMatches {
			if !decisions.IsConfirmed(idx, candidate.OfficerID) {
				continue
			}
			if person.HasVerifiedID(candidate.OfficerID) {
				continue
			}
			person.VerifiedOfficerIDs = append(person.VerifiedOfficerIDs, candidate.OfficerID)
		}
	}
}

// degrade converts a registry failure into "no data" unless the context
// is done. Rate-limit exhaustion is logged and swallowed so the pipeline
// continues with partial results.
func (e *Engine) degrade(ctx context.Context, err error, msg, subject string) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	slog.Warn(msg, "subject", subject, "error", err)
	return nil
}
