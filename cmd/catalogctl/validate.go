package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyoma102/AI-tools-navigation/internal/catalog"
)

type validateReport struct {
	Source     string          `json:"source"`
	Tools      int             `json:"tools"`
	Categories int             `json:"categories"`
	PerName    map[string]int  `json:"toolsPerCategory"`
	Issues     []catalog.Issue `json:"issues"`
}

func newValidateCmd(opts *cliOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the catalog and report consistency issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, source, err := opts.fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("load %s: %w", opts.source, err)
			}
			report := validateReport{
				Source:     source.Name(),
				Tools:      len(c.Tools),
				Categories: len(c.Categories),
				PerName:    catalog.CountByCategory(c),
				Issues:     c.Validate(),
			}
			if report.Issues == nil {
				report.Issues = []catalog.Issue{}
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if err := writeJSON(out, report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "source=%s tools=%d categories=%d issues=%d\n", report.Source, report.Tools, report.Categories, len(report.Issues))
				for _, issue := range report.Issues {
					fmt.Fprintln(out, issue.String())
				}
			}
			if strict && len(report.Issues) > 0 {
				return exitSilent(2)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with status 2 when issues are found")
	return cmd
}
