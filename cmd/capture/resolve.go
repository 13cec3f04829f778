package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-capture/internal/extraction"
	"task-capture/pkg/datemath"
)

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [fragment...]",
		Short: "Resolve a natural-language date or time",
		Long: `Resolve a date/time fragment against the reference clock.

Examples:
  capture resolve "next friday at 3pm"
  capture resolve --now 2024-11-10 "the 31st"`,
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

			out, err := uc.Resolve(cmd.Context(), extraction.ResolveInput{Fragment: text, Now: now})
			if err != nil {
				return err
			}

			if opts.json {
				res := resolveJSON{Found: out.Found}
				if out.Found {
					res.Result = &out.Result
				}
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if !out.Found {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No date or time found.")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (rule %s, confidence %.2f)\n",
				formatParsed(out.Result), out.Result.Rule, out.Result.Confidence)
			return err
		},
	}
}

func formatParsed(p datemath.ParsedDateTime) string {
	if p.Time == nil {
		return p.Date.String()
	}
	return p.Date.String() + " " + p.Time.String()
}
