package model

import "fmt"

// Appointment is one record from a registry officer's appointment history.
type Appointment struct {
	// CompanyNumber is the uniqueness key for categorization.
	CompanyNumber string
	CompanyName   string
	// CompanyStatus is the registry's raw status string, e.g. "active",
	// "dissolved", "liquidation".
	CompanyStatus string
	// Resigned is set when the appointment carries a resignation date.
	Resigned bool
	// HasInsolvency is set when the company has recorded insolvency cases.
	HasInsolvency bool
}

// DisplayEntry renders the appointment as "CompanyName (CompanyNumber)"
// with an insolvency-history suffix when applicable.
func (a *Appointment) DisplayEntry() string {
	entry := fmt.Sprintf("%s (%s)", a.CompanyName, a.CompanyNumber)
	if a.HasInsolvency {
		entry += " [Insolvency history]"
	}
	return entry
}

// Footprint is the categorized corporate footprint of one person: every
// company across all confirmed identities, each counted exactly once.
type Footprint struct {
	Active      []string
	Dissolved   []string
	Involuntary []string
	Resigned    []string
}

// Total is the number of distinct companies across all categories.
func (f *Footprint) Total() int {
	return len(f.Active) + len(f.Dissolved) + len(f.Involuntary) + len(f.Resigned)
}
