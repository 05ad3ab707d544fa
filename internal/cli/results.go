package cli

import (
	"fmt"
	"io"

	"github.com/calhoward/officertrail/internal/engine"
	"github.com/calhoward/officertrail/internal/names"
	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

// NewInsolvencyProgress returns a progress hook rendering a bar while the
// categorizer runs its one-lookup-per-company insolvency checks.
func NewInsolvencyProgress(writer io.Writer) engine.ProgressFunc {
	var bar *progressbar.ProgressBar

	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(writer),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Checking insolvency history..."),
				progressbar.OptionOnCompletion(func() {
					_, _ = fmt.Fprintln(writer)
				}),
			)
		}
		_ = bar.Set(done)
		if done >= total {
			bar = nil
		}
	}
}

// RenderResult writes the full resolution outcome: the company header and,
// per person, the categorized company lists with counts.
func RenderResult(writer io.Writer, result *engine.Result) error {
	header := fmt.Sprintf("%s (%s)", result.Company.CompanyName, result.Company.CompanyNumber)
	if _, err := fmt.Fprintln(writer, FormatSuccess(header)); err != nil {
		return fmt.Errorf("failed to write company header: %w", err)
	}
	if _, err := fmt.Fprintln(writer, TitleStyle.Render(ChartIcon+" Results")); err != nil {
		return fmt.Errorf("failed to write results title: %w", err)
	}

	for _, pr := range result.People {
		if err := renderPerson(writer, pr); err != nil {
			return err
		}
	}

	return nil
}

func renderPerson(writer io.Writer, pr engine.PersonResult) error {
	person := pr.Person
	header := fmt.Sprintf("%s (DOB: %s) - %s",
		names.FormatProperOrder(person.Name), person.DOBString(), person.RolesString())
	if _, err := fmt.Fprintln(writer, RenderBox("Person", header)); err != nil {
		return fmt.Errorf("failed to write person box: %w", err)
	}

	if len(person.VerifiedOfficerIDs) == 0 {
		if _, err := fmt.Fprintln(writer, FormatInfo("No officer IDs confirmed")); err != nil {
			return fmt.Errorf("failed to write no-ids note: %w", err)
		}
		return nil
	}

	footprint := pr.Footprint
	if footprint.Total() == 0 {
		if _, err := fmt.Fprintln(writer, FormatInfo("No companies found")); err != nil {
			return fmt.Errorf("failed to write empty note: %w", err)
		}
		return nil
	}

	summary := fmt.Sprintf("Active: %d   Dissolved: %d   Involuntary: %d   Resigned: %d",
		len(footprint.Active), len(footprint.Dissolved), len(footprint.Involuntary), len(footprint.Resigned))
	if _, err := fmt.Fprintln(writer, SubtleStyle.Render(summary)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	sections := []struct {
		title   string
		style   lipgloss.Style
		entries []string
	}{
		{SuccessIcon + " Active Companies", SuccessStyle, footprint.Active},
		{"⊘ Dissolved Companies", SubtleStyle, footprint.Dissolved},
		{WarningIcon + " In Involuntary Proceedings", WarningStyle, footprint.Involuntary},
		{"← Resigned Positions", InfoStyle, footprint.Resigned},
	}

	for _, section := range sections {
		if len(section.entries) == 0 {
			continue
		}
		title := fmt.Sprintf("%s (%d)", section.title, len(section.entries))
		if _, err := fmt.Fprintln(writer, section.style.Render(title)); err != nil {
			return fmt.Errorf("failed to write section title: %w", err)
		}
		for _, entry := range section.entries {
			if _, err := fmt.Fprintf(writer, "  - %s\n", entry); err != nil {
				return fmt.Errorf("failed to write entry: %w", err)
			}
		}
	}

	return nil
}
