package engine

import (
	"context"
	"log/slog"

	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/names"
)

// personKey is the identity key used to merge roster entries: two raw
// items with the same normalized name and birth month/year are the same
// legal person.
type personKey struct {
	name  string
	month int
	year  int
}

// BuildRoster merges the company's currently-serving directors and
// individual PSCs into one record per distinct person. Roles are unioned;
// the first non-empty officer id wins; first-appearance order (directors
// before PSCs) is preserved.
func (e *Engine) BuildRoster(ctx context.Context, companyNumber string) ([]*model.Person, error) {
	officers, err := e.registry.Officers(ctx, companyNumber)
	if err := e.degrade(ctx, err, "Officer listing unavailable", companyNumber); err != nil {
		return nil, err
	}

	pscs, err := e.registry.PSCs(ctx, companyNumber)
	if err := e.degrade(ctx, err, "PSC listing unavailable", companyNumber); err != nil {
		return nil, err
	}

	byKey := make(map[personKey]*model.Person)
	var roster []*model.Person

	add := func(name string, month, year int, role model.Role, officerID string) {
		key := personKey{
			name:  names.NormalizeKey(name),
			month: month,
			year:  year,
		}

		if existing, ok := byKey[key]; ok {
			existing.AddRole(role)
			if officerID != "" && len(existing.VerifiedOfficerIDs) == 0 {
				existing.VerifiedOfficerIDs = []string{officerID}
			}
			return
		}

		person := &model.Person{
			Name:     name,
			DOBMonth: month,
			DOBYear:  year,
			Roles:    []model.Role{role},
		}
		if officerID != "" {
			person.VerifiedOfficerIDs = []string{officerID}
		}
		byKey[key] = person
		roster = append(roster, person)
	}

	for _, item := range officers {
		if item.ResignedOn != "" {
			continue
		}
		add(item.Name, item.DateOfBirth.Month, item.DateOfBirth.Year, model.RoleDirector, item.OfficerID())
	}

	for _, item := range pscs {
		if item.CeasedOn != "" || !item.Individual() {
			continue
		}
		add(item.Name, item.DateOfBirth.Month, item.DateOfBirth.Year, model.RolePSC, "")
	}

	slog.Info("Aggregated company roster",
		"company_number", companyNumber,
		"officer_items", len(officers),
		"psc_items", len(pscs),
		"persons", len(roster))

	return roster, nil
}
