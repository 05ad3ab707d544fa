package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calhoward/officertrail/internal/cli"
	"github.com/calhoward/officertrail/internal/engine"
	"github.com/calhoward/officertrail/internal/registry"
)

const maxCompanyNumberLen = 8

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <company-number>",
		Short: "Resolve the corporate footprint of a company's directors and PSCs",
		Long: `Resolve aggregates the company's current directors and PSCs, searches
the registry for duplicate officer records with the same date of birth,
asks you to confirm which candidates are the same person, and prints
every appointment of the confirmed identities categorized as active,
dissolved, under involuntary proceedings, or resigned.`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}

	cmd.Flags().Duration("rate-delay", 250*time.Millisecond, "minimum delay before each registry request")

	_ = viper.BindPFlag("api.rate_delay", cmd.Flags().Lookup("rate-delay"))

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	companyNumber := strings.ToUpper(strings.TrimSpace(args[0]))
	if companyNumber == "" {
		return fmt.Errorf("company number is required")
	}
	if len(companyNumber) > maxCompanyNumberLen {
		return fmt.Errorf("company number must be at most %d characters", maxCompanyNumberLen)
	}

	client, err := registry.NewClient(registry.Config{
		APIKey:    viper.GetString("api.key"),
		BaseURL:   viper.GetString("api.base_url"),
		RateDelay: viper.GetDuration("api.rate_delay"),
	})
	if err != nil {
		return fmt.Errorf("failed to create registry client: %w", err)
	}

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	eng := engine.New(client, prompter).
		WithProgress(cli.NewInsolvencyProgress(os.Stdout))

	result, err := eng.Resolve(cmd.Context(), companyNumber)
	if err != nil {
		return err
	}

	return cli.RenderResult(os.Stdout, result)
}
