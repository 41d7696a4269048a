package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/BugHunterPhilosopher/phonemizer"
	"github.com/BugHunterPhilosopher/phonemizer/internal/textlines"
)

func newPreserveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preserve [file]",
		Short: "Strip punctuation into a restorable JSON envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.newPunctuation()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			chunks, marks := p.Preserve(textlines.Split(text))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(phonemizer.Encoding{Chunks: chunks, Marks: marks})
		},
	}
}
