package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BugHunterPhilosopher/phonemizer"
	"github.com/BugHunterPhilosopher/phonemizer/internal/textlines"
)

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [file]",
		Short: "Rebuild the original text from a preserve envelope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var enc phonemizer.Encoding
			if err := json.NewDecoder(strings.NewReader(text)).Decode(&enc); err != nil {
				return fmt.Errorf("decode envelope: %w", err)
			}
			lines, err := enc.Restore()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), textlines.Join(lines))
			return nil
		},
	}
}
