package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calhoward/officertrail/internal/match"
	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/names"
	"github.com/calhoward/officertrail/internal/registry"
)

// FindCandidates populates each person's CandidateMatches with officer
// records elsewhere in the search index that share the person's exact
// date of birth. Persons with an unknown DOB or no extractable name
// tokens get no candidates.
func (e *Engine) FindCandidates(ctx context.Context, people []*model.Person) error {
	for _, person := range people {
		if err := e.findCandidatesFor(ctx, person); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) findCandidatesFor(ctx context.Context, person *model.Person) error {
	first, last := names.ExtractFirstLast(person.Name)
	if first == "" || last == "" {
		return nil
	}

	// Four phrasings of the same name; the search index treats them as
	// distinct queries with distinct result sets.
	queries := []string{
		names.FormatProperOrder(person.Name),
		fmt.Sprintf("%s %s", first, last),
		fmt.Sprintf("%s %s", last, first),
		fmt.Sprintf("%s, %s", last, first),
	}

	seen := make(map[string]bool)
	var hits []registry.OfficerSearchHit

	for _, query := range queries {
		results, err := e.registry.SearchOfficers(ctx, query)
		if err := e.degrade(ctx, err, "Officer search unavailable", query); err != nil {
			return err
		}

		for _, hit := range results {
			officerID := hit.OfficerID()
			if officerID == "" || seen[officerID] {
				continue
			}
			seen[officerID] = true
			hits = append(hits, hit)
		}
	}

	if !person.HasDOB() {
		// An unknown DOB can never be matched against; every hit stays
		// unconfirmable.
		slog.Debug("Skipping DOB filter, no date of birth on record", "person", person.Name)
		return nil
	}

	for _, hit := range hits {
		if hit.DateOfBirth.Month != person.DOBMonth || hit.DateOfBirth.Year != person.DOBYear {
			continue
		}

		officerID := hit.OfficerID()
		if person.HasVerifiedID(officerID) {
			continue
		}

		person.CandidateMatches = append(person.CandidateMatches,
			match.Score(person, officerID, hit.Title, hit.DateOfBirth.Month, hit.DateOfBirth.Year))
	}

	slog.Debug("Candidate search complete",
		"person", person.Name,
		"hits", len(hits),
		"candidates", len(person.CandidateMatches))

	return nil
}
