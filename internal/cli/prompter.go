package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/calhoward/officertrail/internal/engine"
	"github.com/calhoward/officertrail/internal/model"
	"github.com/calhoward/officertrail/internal/names"
	"github.com/calhoward/officertrail/internal/registry"
)

// Prompter implements the interactive match-review step: it walks every
// person's candidate matches and collects a binary same-person decision
// for each, defaulting to the scorer's suggestion.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter with the given reader and writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// ReviewMatches displays each person with their candidate matches and
// collects confirm/reject decisions.
func (p *Prompter) ReviewMatches(ctx context.Context, company *registry.CompanyProfile, people []*model.Person) (engine.DecisionSet, error) {
	header := fmt.Sprintf("Found company: %s (%s) - %s",
		company.CompanyName, company.CompanyNumber, company.CompanyStatus)
	if _, err := fmt.Fprintln(p.writer, FormatSuccess(header)); err != nil {
		return nil, fmt.Errorf("failed to write company header: %w", err)
	}
	if _, err := fmt.Fprintln(p.writer, TitleStyle.Render("Review potential matches")); err != nil {
		return nil, fmt.Errorf("failed to write review title: %w", err)
	}

	decisions := engine.NewDecisionSet()

	for idx, person := range people {
		if err := p.reviewPerson(ctx, idx, person, decisions); err != nil {
			return nil, err
		}
	}

	return decisions, nil
}

func (p *Prompter) reviewPerson(ctx context.Context, personIdx int, person *model.Person, decisions engine.DecisionSet) error {
	header := fmt.Sprintf("%s (DOB: %s) - %s",
		names.FormatProperOrder(person.Name), person.DOBString(), person.RolesString())
	if _, err := fmt.Fprintln(p.writer, RenderBox("Person", header)); err != nil {
		return fmt.Errorf("failed to write person box: %w", err)
	}

	if len(person.CandidateMatches) == 0 {
		if _, err := fmt.Fprintln(p.writer, FormatInfo("No additional matches found with same DOB")); err != nil {
			return fmt.Errorf("failed to write no-matches note: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(p.writer, "Found %s potential match(es) with same DOB:\n\n",
		BoldStyle.Render(fmt.Sprintf("%d", len(person.CandidateMatches)))); err != nil {
		return fmt.Errorf("failed to write match count: %w", err)
	}

	for _, candidate := range person.CandidateMatches {
		confirmed, err := p.reviewCandidate(ctx, candidate)
		if err != nil {
			return err
		}

		decision := engine.DecisionRejected
		if confirmed {
			decision = engine.DecisionConfirmed
		}
		decisions.Set(personIdx, candidate.OfficerID, decision)
	}

	return nil
}

func (p *Prompter) reviewCandidate(ctx context.Context, candidate model.CandidateMatch) (bool, error) {
	dob := fmt.Sprintf("%02d/%d", candidate.DOBMonth, candidate.DOBYear)
	if _, err := fmt.Fprintf(p.writer, "%s (DOB: %s)\n",
		BoldStyle.Render(names.FormatProperOrder(candidate.Name)), dob); err != nil {
		return false, fmt.Errorf("failed to write candidate: %w", err)
	}

	confidence := fmt.Sprintf("Confidence: %s (%.1f%%)", candidate.Confidence, candidate.Similarity*100)
	if _, err := fmt.Fprintln(p.writer, ConfidenceStyle(candidate.Confidence).Render(confidence)); err != nil {
		return false, fmt.Errorf("failed to write confidence: %w", err)
	}

	prompt := "Same person? [y/N]"
	if candidate.Suggested {
		prompt = "Same person? [Y/n]"
	}

	choice, err := p.promptChoice(ctx, prompt, []string{"y", "n", ""})
	if err != nil {
		return false, err
	}

	if choice == "" {
		return candidate.Suggested, nil
	}
	return choice == "y", nil
}

// promptChoice reads input until one of the valid choices is entered. An
// empty string in validChoices accepts a bare newline (the default).
func (p *Prompter) promptChoice(ctx context.Context, prompt string, validChoices []string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if _, err := fmt.Fprintf(p.writer, "%s: ", FormatPrompt(prompt)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return "", fmt.Errorf("input terminated")
			}
			return "", err
		}

		choice := strings.ToLower(strings.TrimSpace(input))

		for _, valid := range validChoices {
			if choice == valid {
				return choice, nil
			}
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Invalid choice. Please try again.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}
