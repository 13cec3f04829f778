package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

func extractCmd(opts *options) *cobra.Command {
	var appName string

	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Extract ranked task candidates from a message",
		Long: `Extract ranked task candidates from a chat message or any free text.

Examples:
  capture extract "Can you pick up milk tomorrow at 5pm? Also the report is due Friday."
  pbpaste | capture extract --json
  capture extract --now "2024-05-01 15:30" "doctor appointment next friday"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			now, err := opts.reference()
			if err != nil {
				return err
			}
			uc, err := opts.useCase()
			if err != nil {
				return err
			}

			out, err := uc.Extract(cmd.Context(), model.Scope{}, extraction.ExtractInput{
				Content: model.SharedContent{Text: text, AppName: appName},
				Now:     now,
			})
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), out.Candidates)
			}
			return writeCandidates(cmd, out.Candidates)
		},
	}

	cmd.Flags().StringVar(&appName, "app", "cli", "name of the app the text was shared from")
	return cmd
}

func writeCandidates(cmd *cobra.Command, cands []extraction.Candidate) error {
	if len(cands) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tWHEN\tCATEGORY\tPRIORITY\tCONFIDENCE\tSTRATEGY")
	for i, c := range cands {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			i+1, c.Title, formatWhen(c), orDash(c.SuggestedCategory), c.InferredPriority, c.Confidence, c.Strategy)
	}
	return w.Flush()
}

func formatWhen(c extraction.Candidate) string {
	if c.Date == nil {
		return "-"
	}
	if c.Time == nil {
		return c.Date.String()
	}
	return c.Date.String() + " " + c.Time.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
