// Package match scores candidate officer records against a source person.
//
// The registry's officer-search index has no stable cross-reference key, so
// same-DOB hits are ranked purely by name similarity and a human makes the
// final same-person call. The tier thresholds here are calibrated against
// the Ratcliff/Obershelp ratio; swapping the algorithm would shift every
// boundary.
package match

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/names"
)

// SuggestThreshold is the similarity at or above which a candidate is
// pre-seeded as confirmed in the review step.
const SuggestThreshold = 0.85

// Similarity returns the Ratcliff/Obershelp ratio in [0,1] between two
// names, case-insensitive: twice the total length of matched common blocks
// divided by the sum of both lengths.
func Similarity(nameA, nameB string) float64 {
	a := strings.Split(strings.ToUpper(nameA), "")
	b := strings.Split(strings.ToUpper(nameB), "")
	return difflib.NewMatcher(a, b).Ratio()
}

// Tier maps a similarity score to its confidence tier. Boundaries are
// inclusive at the lower bound.
func Tier(similarity float64) model.Confidence {
	switch {
	case similarity >= 0.95:
		return model.ConfidenceVeryHigh
	case similarity >= SuggestThreshold:
		return model.ConfidenceHigh
	case similarity >= 0.70:
		return model.ConfidenceMedium
	case similarity >= 0.50:
		return model.ConfidenceLow
	default:
		return model.ConfidenceVeryLow
	}
}

// Score builds a CandidateMatch for a search hit, comparing the
// proper-order forms of both names.
func Score(person *model.Person, officerID, candidateName string, dobMonth, dobYear int) model.CandidateMatch {
	similarity := Similarity(
		names.FormatProperOrder(person.Name),
		names.FormatProperOrder(candidateName),
	)

	return model.CandidateMatch{
		OfficerID:  officerID,
		Name:       candidateName,
		DOBMonth:   dobMonth,
		DOBYear:    dobYear,
		Similarity: similarity,
		Confidence: Tier(similarity),
		Suggested:  similarity >= SuggestThreshold,
	}
}
