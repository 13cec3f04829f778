package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-capture/internal/extraction"
	"task-capture/internal/model"
)

func voiceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "voice [transcript...]",
		Short: "Parse a single spoken request",
		Long: `Parse one transcribed utterance into a title, date/time, category and priority.

Example:
  capture voice "remind me to call the dentist tomorrow at 9am"`,
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

			out, err := uc.ParseVoice(cmd.Context(), model.Scope{}, extraction.VoiceInput{Transcript: text, Now: now})
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), voiceJSON{
					Title:    out.Title,
					Category: out.Category,
					Priority: string(out.Priority),
					When:     out.When,
				})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Title:    %s\n", out.Title)
			if out.When != nil {
				fmt.Fprintf(w, "When:     %s\n", formatParsed(*out.When))
			} else {
				fmt.Fprintln(w, "When:     -")
			}
			fmt.Fprintf(w, "Category: %s\n", orDash(out.Category))
			_, err = fmt.Fprintf(w, "Priority: %s\n", out.Priority)
			return err
		},
	}
}
