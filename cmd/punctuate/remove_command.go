package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BugHunterPhilosopher/phonemizer/internal/textlines"
)

func newRemoveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [file]",
		Short: "Replace punctuation with spaces",
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
			lines := p.Remove(textlines.Split(text))
			fmt.Fprintln(cmd.OutOrStdout(), textlines.Join(lines))
			return nil
		},
	}
}
