package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/registry"
)

// involuntaryStatuses are the insolvency-adjacent company statuses imposed
// on a company, as distinct from voluntary dissolution.
var involuntaryStatuses = map[string]bool{
	"liquidation":            true,
	"administration":         true,
	"receivership":           true,
	"insolvency-proceedings": true,
	"converted-closed":       true,
}

// Footprint merges the appointment histories of every verified officer id
// of one person and classifies the combined company set. Each company
// number lands in exactly one category and is counted once no matter how
// many merged identities reference it; the first-seen record wins.
func (e *Engine) Footprint(ctx context.Context, person *model.Person) (*model.Footprint, error) {
	var combined []registry.AppointmentItem
	for _, officerID := range person.VerifiedOfficerIDs {
		items, err := e.registry.Appointments(ctx, officerID)
		if err := e.degrade(ctx, err, "Appointment history unavailable", officerID); err != nil {
			return nil, err
		}
		combined = append(combined, items...)
	}

	// Dedup by company number, first occurrence wins. Later duplicates
	// may carry a different recorded status on stale data; they are
	// dropped, not reconciled.
	seen := make(map[string]bool)
	var unique []registry.AppointmentItem
	for _, item := range combined {
		number := item.AppointedTo.CompanyNumber
		if number == "" || seen[number] {
			continue
		}
		seen[number] = true
		unique = append(unique, item)
	}

	footprint := &model.Footprint{}
	for i, item := range unique {
		hasInsolvency, err := e.registry.HasInsolvency(ctx, item.AppointedTo.CompanyNumber)
		if err := e.degrade(ctx, err, "Insolvency lookup unavailable", item.AppointedTo.CompanyNumber); err != nil {
			return nil, err
		}
		if e.progress != nil {
			e.progress(i+1, len(unique))
		}

		appointment := model.Appointment{
			CompanyNumber: item.AppointedTo.CompanyNumber,
			CompanyName:   item.AppointedTo.CompanyName,
			CompanyStatus: strings.ToLower(item.AppointedTo.CompanyStatus),
			Resigned:      item.ResignedOn != "",
			HasInsolvency: hasInsolvency,
		}
		if appointment.CompanyName == "" {
			appointment.CompanyName = "Unknown"
		}

		entry := appointment.DisplayEntry()

		// Resignation takes precedence over company status; statuses the
		// registry may add later fall back to active.
		switch {
		case appointment.Resigned:
			footprint.Resigned = append(footprint.Resigned, entry)
		case involuntaryStatuses[appointment.CompanyStatus]:
			footprint.Involuntary = append(footprint.Involuntary, entry)
		case appointment.CompanyStatus == "dissolved":
			footprint.Dissolved = append(footprint.Dissolved, entry)
		default:
			footprint.Active = append(footprint.Active, entry)
		}
	}

	slog.Info("Categorized appointments",
		"person", person.Name,
		"officer_ids", len(person.VerifiedOfficerIDs),
		"appointments", len(combined),
		"companies", len(unique))

	return footprint, nil
}
