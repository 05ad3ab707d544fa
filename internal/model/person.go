// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// Role is a capacity in which a person is associated with a company.
type Role string

// Role constants.
const (
	RoleDirector Role = "Director"
	RolePSC      Role = "PSC"
)

// Person is a resolved individual associated with the target company.
// Two roster entries with the same identity key (normalized name plus
// birth month and year) denote the same legal person and are merged.
type Person struct {
	// Name is the raw registry-format name, usually "SURNAME, Forename".
	Name string
	// DOBMonth and DOBYear are zero when the registry omits the date of
	// birth; an unknown DOB is never matched against.
	DOBMonth int
	DOBYear  int
	// Roles is the union of all source roles, deduplicated.
	Roles []Role
	// VerifiedOfficerIDs are registry officer identifiers known to denote
	// this person. The identifier from the original appointment record,
	// if any, comes first; human-confirmed matches are appended.
	VerifiedOfficerIDs []string
	// CandidateMatches are search hits awaiting a human decision.
	CandidateMatches []CandidateMatch
}

// HasDOB reports whether the registry recorded a date of birth.
func (p *Person) HasDOB() bool {
	return p.DOBMonth != 0 && p.DOBYear != 0
}

// DOBString renders the date of birth as MM/YYYY, or "Unknown".
func (p *Person) DOBString() string {
	if !p.HasDOB() {
		return "Unknown"
	}
	return fmt.Sprintf("%02d/%d", p.DOBMonth, p.DOBYear)
}

// RolesString renders the role set sorted and joined with " & ".
func (p *Person) RolesString() string {
	labels := make([]string, 0, len(p.Roles))
	for _, r := range p.Roles {
		labels = append(labels, string(r))
	}
	sort.Strings(labels)
	return strings.Join(labels, " & ")
}

// AddRole unions a role into the person's role set.
func (p *Person) AddRole(role Role) {
	for _, r := range p.Roles {
		if r == role {
			return
		}
	}
	p.Roles = append(p.Roles, role)
}

// HasVerifiedID reports whether the officer id is already confirmed for
// this person.
func (p *Person) HasVerifiedID(officerID string) bool {
	for _, id := range p.VerifiedOfficerIDs {
		if id == officerID {
			return true
		}
	}
	return false
}

// CandidateMatch is an officer-search hit with the same date of birth as
// the source person. Whether it denotes the same legal person is decided
// by a human; Suggested only pre-seeds that decision.
type CandidateMatch struct {
	OfficerID  string
	Name       string
	DOBMonth   int
	DOBYear    int
	Similarity float64
	Confidence Confidence
	// Suggested is true when the similarity clears the auto-suggest
	// threshold. It is a default, never a decision.
	Suggested bool
}

// Confidence is a discrete tier derived from the name-similarity score.
type Confidence string

// Confidence tiers, in descending order.
const (
	ConfidenceVeryHigh Confidence = "VERY HIGH"
	ConfidenceHigh     Confidence = "HIGH"
	ConfidenceMedium   Confidence = "MEDIUM"
	ConfidenceLow      Confidence = "LOW"
	ConfidenceVeryLow  Confidence = "VERY LOW"
)
